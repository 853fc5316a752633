// Package identity defines the contract for the external identity provider.
// The rest of the application depends on this interface and the classified
// errors only; provider-specific codes never leave the adapter.
package identity

import (
	"context"
	"errors"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
)

// Classified failures of the identity provider. Adapters map their concrete
// error codes to these before returning.
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrWrongCredential  = errors.New("wrong email or password")
	ErrMalformedEmail   = errors.New("malformed email address")
	ErrWeakPassword     = errors.New("password is too weak")
	ErrEmailInUse       = errors.New("email is already registered")
	ErrPopupClosed      = errors.New("sign-in window was closed")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrServiceFailure   = errors.New("identity service failure")
)

// Service is the login/register/logout/current-user contract the storefront
// consumes. Calls that reach the provider take a context; there is no
// automatic retry, the user re-submits after a failure.
type Service interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Register(ctx context.Context, name, email, password string) (domain.User, error)

	// LoginWithGoogle exchanges a Google ID token obtained by the frontend
	// popup flow. An empty token means the popup was dismissed.
	LoginWithGoogle(ctx context.Context, idToken string) (domain.User, error)

	Logout(ctx context.Context) error
	RequestPasswordReset(ctx context.Context, email string) error

	CurrentUser() (domain.User, bool)

	// OnSessionChange registers fn, invokes it once immediately with the
	// current state, and again on every transition. The returned func
	// unsubscribes.
	OnSessionChange(fn func(*domain.User)) func()
}
