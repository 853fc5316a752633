package firebase

import (
	"testing"

	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
	"github.com/stretchr/testify/assert"
)

func TestMapRESTError_ClassifiesKnownCodes(t *testing.T) {
	cases := []struct {
		message string
		want    error
	}{
		{"EMAIL_NOT_FOUND", identity.ErrAccountNotFound},
		{"INVALID_PASSWORD", identity.ErrWrongCredential},
		{"INVALID_LOGIN_CREDENTIALS", identity.ErrWrongCredential},
		{"INVALID_EMAIL", identity.ErrMalformedEmail},
		{"WEAK_PASSWORD : Password should be at least 6 characters", identity.ErrWeakPassword},
		{"EMAIL_EXISTS", identity.ErrEmailInUse},
	}

	for _, tc := range cases {
		assert.ErrorIs(t, mapRESTError(tc.message), tc.want, tc.message)
	}
}

func TestMapRESTError_UnknownCodeIsServiceFailure(t *testing.T) {
	err := mapRESTError("TOO_MANY_ATTEMPTS_TRY_LATER : blocked")

	assert.ErrorIs(t, err, identity.ErrServiceFailure)
	assert.Contains(t, err.Error(), "TOO_MANY_ATTEMPTS_TRY_LATER")
}
