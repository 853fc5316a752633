package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Galyna-kud/flowers-of-happiness/internal/bouquet"
	"github.com/Galyna-kud/flowers-of-happiness/internal/checkout"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// handleServiceError maps classified domain and identity errors to an HTTP
// status and the user-facing message the frontend shows as a toast.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrNotAuthenticated):
		respondError(w, http.StatusUnauthorized, "auth_required", "Необхідна авторизація")
	case errors.Is(err, identity.ErrAccountNotFound):
		respondError(w, http.StatusUnauthorized, "account_not_found", "Користувача з такою поштою не знайдено")
	case errors.Is(err, identity.ErrWrongCredential):
		respondError(w, http.StatusUnauthorized, "wrong_credential", "Невірний пароль")
	case errors.Is(err, identity.ErrMalformedEmail):
		respondError(w, http.StatusBadRequest, "malformed_email", "Невірний формат email")
	case errors.Is(err, identity.ErrWeakPassword):
		respondError(w, http.StatusBadRequest, "weak_password", "Пароль занадто слабкий (мінімум 6 символів)")
	case errors.Is(err, identity.ErrEmailInUse):
		respondError(w, http.StatusConflict, "email_in_use", "Користувач з такою поштою вже існує")
	case errors.Is(err, identity.ErrPopupClosed):
		respondError(w, http.StatusBadRequest, "popup_closed", "Вікно авторизації було закрито")
	case errors.Is(err, identity.ErrServiceFailure):
		respondError(w, http.StatusBadGateway, "identity_unavailable", "Помилка сервісу авторизації")
	case errors.Is(err, bouquet.ErrEmptyBouquet):
		respondError(w, http.StatusUnprocessableEntity, "empty_bouquet", "Букет порожній, додайте хоча б одну квітку")
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusUnprocessableEntity, "empty_cart", "Кошик порожній")
	case errors.Is(err, checkout.ErrMissingDeliveryInfo):
		respondError(w, http.StatusUnprocessableEntity, "missing_delivery_info", "Вкажіть адресу та дату доставки")
	case errors.Is(err, checkout.ErrPastDeliveryDate):
		respondError(w, http.StatusUnprocessableEntity, "past_delivery_date", "Дата доставки не може бути в минулому")
	case errors.Is(err, checkout.ErrInvalidPromoCode):
		respondError(w, http.StatusUnprocessableEntity, "invalid_promo_code", "Невірний промокод, перевірте правильність введення")
	default:
		log.Printf("unclassified error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "Внутрішня помилка сервера")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Невірний формат запиту")
		return false
	}
	return true
}
