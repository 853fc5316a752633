// Package firebase adapts the identity contract to Firebase: the Identity
// Toolkit REST API for credential flows, the Admin SDK for ID-token
// verification, and Firestore for the user profile document.
package firebase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Galyna-kud/flowers-of-happiness/internal/domain"
	"github.com/Galyna-kud/flowers-of-happiness/internal/identity"
)

type Config struct {
	ProjectID string
	// APIKey is the web API key used for the Identity Toolkit REST calls.
	APIKey string
	// CredentialsFile optionally points at a service account JSON; when
	// empty, application default credentials apply.
	CredentialsFile string
}

type Client struct {
	identity.Session

	cfg   Config
	httpc *http.Client
	auth  *fbauth.Client
	fs    *firestore.Client
}

var _ identity.Service = (*Client)(nil)

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ProjectID == "" || cfg.APIKey == "" {
		return nil, errors.New("firebase: project ID and API key are required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}
	fsClient, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w", err)
	}

	return &Client{
		cfg:   cfg,
		httpc: &http.Client{},
		auth:  authClient,
		fs:    fsClient,
	}, nil
}

func (c *Client) Close() error {
	return c.fs.Close()
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	var res accountPayload
	err := c.post(ctx, "signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &res)
	if err != nil {
		return domain.User{}, err
	}

	user := c.ensureProfile(ctx, res, "")
	c.Set(&user)
	return user, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (domain.User, error) {
	var res accountPayload
	err := c.post(ctx, "signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &res)
	if err != nil {
		return domain.User{}, err
	}

	// Attach the chosen display name to the new account.
	err = c.post(ctx, "update", map[string]any{
		"idToken":           res.IDToken,
		"displayName":       name,
		"returnSecureToken": false,
	}, &accountPayload{})
	if err != nil {
		log.Printf("firebase: set display name: %v", err)
	}

	user := c.ensureProfile(ctx, res, name)
	c.Set(&user)
	return user, nil
}

func (c *Client) LoginWithGoogle(ctx context.Context, idToken string) (domain.User, error) {
	if strings.TrimSpace(idToken) == "" {
		// The frontend reports a dismissed popup as an empty credential.
		return domain.User{}, identity.ErrPopupClosed
	}

	var res accountPayload
	err := c.post(ctx, "signInWithIdp", map[string]any{
		"postBody":            "id_token=" + idToken + "&providerId=google.com",
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}, &res)
	if err != nil {
		return domain.User{}, err
	}

	user := c.ensureProfile(ctx, res, "")
	c.Set(&user)
	return user, nil
}

func (c *Client) Logout(context.Context) error {
	c.Set(nil)
	return nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.post(ctx, "sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, &accountPayload{})
}

// Restore re-establishes a session from a Firebase ID token kept by the
// frontend across reloads.
func (c *Client) Restore(ctx context.Context, idToken string) (domain.User, error) {
	token, err := c.auth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return domain.User{}, identity.ErrNotAuthenticated
	}

	record, err := c.auth.GetUser(ctx, token.UID)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %v", identity.ErrServiceFailure, err)
	}

	user := c.ensureProfile(ctx, accountPayload{
		LocalID:     record.UID,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		PhotoURL:    record.PhotoURL,
	}, "")
	c.Set(&user)
	return user, nil
}

// ensureProfile builds the domain user and creates the Firestore user
// document on first sight. Profile write failures are logged, not fatal:
// the sign-in itself already succeeded.
func (c *Client) ensureProfile(ctx context.Context, acc accountPayload, name string) domain.User {
	if name == "" {
		name = acc.DisplayName
	}
	if name == "" {
		name, _, _ = strings.Cut(acc.Email, "@")
	}
	user := domain.User{
		ID:     acc.LocalID,
		Name:   name,
		Email:  acc.Email,
		Avatar: acc.PhotoURL,
	}

	doc := c.fs.Collection("users").Doc(user.ID)
	_, err := doc.Get(ctx)
	if status.Code(err) == codes.NotFound {
		if _, err := doc.Set(ctx, map[string]any{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"createdAt": time.Now().Format(time.RFC3339),
		}); err != nil {
			log.Printf("firebase: create user document: %v", err)
		}
	} else if err != nil {
		log.Printf("firebase: read user document: %v", err)
	}

	return user
}
