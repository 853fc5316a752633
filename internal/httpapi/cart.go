package httpapi

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Galyna-kud/flowers-of-happiness/internal/checkout"
	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
)

type addItemRequest struct {
	BouquetID string `json:"bouquetId"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type promoRequest struct {
	Code string `json:"code"`
}

func (h *Handlers) getCart(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.cartState())
}

func (h *Handlers) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	product, ok := h.findProduct(req.BouquetID)
	if !ok {
		respondError(w, http.StatusNotFound, "unknown_bouquet", "Такого букета немає в каталозі")
		return
	}

	item := h.Cart.Add(product)
	respondJSON(w, http.StatusCreated, map[string]any{
		"item":    item,
		"cart":    h.cartState(),
		"message": fmt.Sprintf("%s додано до вашого кошика", item.Bouquet.Name),
	})
}

func (h *Handlers) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	h.Cart.UpdateQuantity(chi.URLParam(r, "id"), req.Quantity)
	respondJSON(w, http.StatusOK, h.cartState())
}

func (h *Handlers) removeCartItem(w http.ResponseWriter, r *http.Request) {
	h.Cart.Remove(chi.URLParam(r, "id"))
	respondJSON(w, http.StatusOK, h.cartState())
}

func (h *Handlers) clearCart(w http.ResponseWriter, _ *http.Request) {
	h.Cart.Clear()
	respondJSON(w, http.StatusOK, h.cartState())
}

func (h *Handlers) applyPromo(w http.ResponseWriter, r *http.Request) {
	var req promoRequest
	if !decodeBody(w, r, &req) {
		return
	}

	discount, err := checkout.Discount(req.Code, h.Cart.TotalPrice())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"discount": discount,
		"message":  "Промокод застосовано, знижку додано до вашого замовлення",
	})
}

func (h *Handlers) cartState() map[string]any {
	subtotal := h.Cart.TotalPrice()
	return map[string]any{
		"items":       h.Cart.Items(),
		"totalItems":  h.Cart.TotalItems(),
		"totalPrice":  subtotal,
		"deliveryFee": checkout.DeliveryFee(subtotal),
	}
}

func (h *Handlers) findProduct(id string) (domain.Bouquet, bool) {
	for _, p := range h.Products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Bouquet{}, false
}
