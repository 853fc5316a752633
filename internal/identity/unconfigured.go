package identity

import (
	"context"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
)

// Unconfigured is the Service used when no identity provider is set up.
// Every provider call fails with ErrServiceFailure; the session stays
// signed out, so catalog, cart and the builder keep working.
func Unconfigured() Service {
	return &unconfigured{}
}

type unconfigured struct {
	Session
}

func (u *unconfigured) Login(context.Context, string, string) (domain.User, error) {
	return domain.User{}, ErrServiceFailure
}

func (u *unconfigured) Register(context.Context, string, string, string) (domain.User, error) {
	return domain.User{}, ErrServiceFailure
}

func (u *unconfigured) LoginWithGoogle(context.Context, string) (domain.User, error) {
	return domain.User{}, ErrServiceFailure
}

func (u *unconfigured) Logout(context.Context) error {
	u.Set(nil)
	return nil
}

func (u *unconfigured) RequestPasswordReset(context.Context, string) error {
	return ErrServiceFailure
}
