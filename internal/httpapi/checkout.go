package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Galyna-kud/flowers-of-happiness/internal/checkout"
)

type placeOrderRequest struct {
	Address        string `json:"address"`
	DeliveryDate   string `json:"deliveryDate"`
	PromoCode      string `json:"promoCode"`
	IdempotencyKey string `json:"idempotencyKey"`
}

// deliveryDateFormats accepts both full RFC 3339 timestamps and the
// datetime-local format the checkout form submits.
var deliveryDateFormats = []string{time.RFC3339, "2006-01-02T15:04"}

func (h *Handlers) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var deliveryDate time.Time
	if req.DeliveryDate != "" {
		var err error
		if deliveryDate, err = parseDeliveryDate(req.DeliveryDate); err != nil {
			respondError(w, http.StatusUnprocessableEntity, "invalid_delivery_date", "Невірний формат дати доставки")
			return
		}
	}

	order, err := h.Checkout.Place(checkout.PlaceRequest{
		Address:        req.Address,
		DeliveryDate:   deliveryDate,
		PromoCode:      req.PromoCode,
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"order":   order,
		"message": fmt.Sprintf("Замовлення оформлено! Номер замовлення: %.8s", order.ID),
	})
}

func (h *Handlers) listOrders(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.Checkout.Orders())
}

func parseDeliveryDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range deliveryDateFormats {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
