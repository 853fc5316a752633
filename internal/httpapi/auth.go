package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleRequest struct {
	IDToken string `json:"idToken"`
}

type resetRequest struct {
	Email string `json:"email"`
}

// sessionRestorer is implemented by adapters that can re-establish a session
// from a provider token kept by the frontend.
type sessionRestorer interface {
	Restore(ctx context.Context, idToken string) (domain.User, error)
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"message": fmt.Sprintf("Ви успішно увійшли як %s", user.Name),
	})
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Identity.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"user":    user,
		"message": fmt.Sprintf("Ласкаво просимо, %s!", user.Name),
	})
}

func (h *Handlers) loginWithGoogle(w http.ResponseWriter, r *http.Request) {
	var req googleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.Identity.LoginWithGoogle(r.Context(), req.IDToken)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"user":    user,
		"message": fmt.Sprintf("Ви успішно увійшли як %s", user.Name),
	})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Identity.Logout(r.Context()); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Ви успішно вийшли з акаунту",
	})
}

func (h *Handlers) requestPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := h.Identity.RequestPasswordReset(r.Context(), req.Email); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Лист для відновлення паролю надіслано на вашу пошту",
	})
}

func (h *Handlers) restoreSession(w http.ResponseWriter, r *http.Request) {
	restorer, ok := h.Identity.(sessionRestorer)
	if !ok {
		respondError(w, http.StatusNotFound, "not_supported", "Відновлення сесії недоступне")
		return
	}

	var req googleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := restorer.Restore(r.Context(), req.IDToken)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}

func (h *Handlers) currentUser(w http.ResponseWriter, _ *http.Request) {
	user, ok := h.Identity.CurrentUser()
	if !ok {
		respondError(w, http.StatusUnauthorized, "auth_required", "Необхідна авторизація")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"user": user})
}
