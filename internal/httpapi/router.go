// Package httpapi is the presentation boundary: a JSON API over the state
// holders, one route group per page of the storefront UI.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Galyna-kud/flowers-of-happiness/internal/bouquet"
	"github.com/Galyna-kud/flowers-of-happiness/internal/cart"
	"github.com/Galyna-kud/flowers-of-happiness/internal/checkout"
	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
)

type Handlers struct {
	Products []domain.Bouquet
	Cart     *cart.Service
	Builder  *bouquet.Builder
	Checkout *checkout.Service
	Identity identity.Service
}

func (h *Handlers) Routes(corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.searchCatalog)
		r.Get("/catalog/categories", h.listCategories)
		r.Get("/promotions", h.listPromotions)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Post("/items", h.addCartItem)
			r.Patch("/items/{id}", h.updateCartItem)
			r.Delete("/items/{id}", h.removeCartItem)
			r.Post("/promo", h.applyPromo)
		})

		r.Post("/checkout", h.placeOrder)
		r.Get("/orders", h.listOrders)

		r.Route("/bouquet", func(r chi.Router) {
			r.Get("/", h.getBuilder)
			r.Post("/flowers/{id}", h.updateFlowerQuantity)
			r.Put("/name", h.renameBouquet)
			r.Post("/reset", h.resetBuilder)
			r.Post("/save", h.saveBouquet)
			r.Post("/cart", h.builderToCart)
		})
		r.Get("/bouquets", h.listSavedBouquets)
		r.Delete("/bouquets/{id}", h.removeSavedBouquet)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.login)
			r.Post("/register", h.register)
			r.Post("/google", h.loginWithGoogle)
			r.Post("/logout", h.logout)
			r.Post("/reset", h.requestPasswordReset)
			r.Post("/restore", h.restoreSession)
			r.Get("/me", h.currentUser)
		})
	})

	return r
}
