package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
)

const restEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:%s?key=%s"

// accountPayload is the union of the Identity Toolkit response fields the
// adapter consumes.
type accountPayload struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	IDToken     string `json:"idToken"`
}

type restError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) post(ctx context.Context, action string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", action, err)
	}

	url := fmt.Sprintf(restEndpoint, action, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", identity.ErrServiceFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure restError
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
			return fmt.Errorf("%w: %s returned %d", identity.ErrServiceFailure, action, resp.StatusCode)
		}
		return mapRESTError(failure.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", action, err)
	}
	return nil
}

// mapRESTError classifies an Identity Toolkit error code. Messages arrive as
// a code optionally followed by detail, e.g.
// "WEAK_PASSWORD : Password should be at least 6 characters".
func mapRESTError(message string) error {
	code := message
	if fields := strings.Fields(message); len(fields) > 0 {
		code = fields[0]
	}

	switch code {
	case "EMAIL_NOT_FOUND":
		return identity.ErrAccountNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return identity.ErrWrongCredential
	case "INVALID_EMAIL", "MISSING_EMAIL":
		return identity.ErrMalformedEmail
	case "WEAK_PASSWORD":
		return identity.ErrWeakPassword
	case "EMAIL_EXISTS":
		return identity.ErrEmailInUse
	default:
		return fmt.Errorf("%w: %s", identity.ErrServiceFailure, message)
	}
}
