package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Galyna-kud/flowers-of-happiness/internal/bouquet"
	"github.com/Galyna-kud/flowers-of-happiness/internal/cart"
	"github.com/Galyna-kud/flowers-of-happiness/internal/checkout"
	"github.com/Galyna-kud/flowers-of-happiness/internal/config"
	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/httpapi"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity/firebase"
	"github.com/Galyna-kud/flowers-of-happiness/internal/storage"
)

func main() {
	cfg := config.Load()

	var store storage.Store
	if cfg.Store.Dir == "" {
		log.Println("STORE_DIR is empty, state will not survive a restart")
		store = storage.NewMemStore()
	} else {
		fileStore, err := storage.NewFileStore(cfg.Store.Dir)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		store = fileStore
	}

	identitySvc := buildIdentity(cfg)

	cartSvc := cart.New(store)
	builder := bouquet.New(store, identitySvc)
	checkoutSvc := checkout.New(store, cartSvc, identitySvc)

	unsubscribe := identitySvc.OnSessionChange(func(u *domain.User) {
		if u == nil {
			log.Println("session: signed out")
			return
		}
		log.Printf("session: signed in as %s <%s>", u.Name, u.Email)
	})
	defer unsubscribe()

	handlers := &httpapi.Handlers{
		Products: domain.Bouquets(),
		Cart:     cartSvc,
		Builder:  builder,
		Checkout: checkoutSvc,
		Identity: identitySvc,
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handlers.Routes(cfg.Server.CORSOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}

func buildIdentity(cfg *config.Config) identity.Service {
	if cfg.Firebase.APIKey == "" || cfg.Firebase.ProjectID == "" {
		log.Println("firebase is not configured, sign-in is disabled")
		return identity.Unconfigured()
	}

	client, err := firebase.New(context.Background(), firebase.Config{
		ProjectID:       cfg.Firebase.ProjectID,
		APIKey:          cfg.Firebase.APIKey,
		CredentialsFile: cfg.Firebase.CredentialsFile,
	})
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	return client
}
