// Package passageflex provides a server-side API for passkey
// authentication flows backed by the Passage identity service.
//
// The package wraps the service's management HTTP API: creating
// registration and authentication transactions, verifying the nonce a
// client obtains after completing the WebAuthn ceremony, and managing
// the passkey devices registered to a user. Users are addressed by
// the external ID your application assigned them; the translation to
// the identity service's own user IDs happens inside the SDK.
//
// Quick Start:
//
// Registration:
//
//	flex, err := passageflex.New(appID, apiKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	txn, err := flex.Auth.CreateRegisterTransaction(ctx, "user-123", "My Laptop")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// hand txn to the client-side SDK to run the WebAuthn ceremony
//
// Verification:
//
//	externalID, err := flex.Auth.VerifyNonce(ctx, nonce)
//	if errors.Is(err, passageflex.ErrInvalidNonce) {
//	    // nonce expired or was already used
//	}
package passageflex

import (
	"context"
	"net/http"
	"strings"

	"github.com/sufield/passageflex/internal/api"
	"github.com/sufield/passageflex/internal/resolver"
	"github.com/sufield/passageflex/models"
)

// DefaultServerURL is the production identity service endpoint.
const DefaultServerURL = "https://api.passage.id"

// PassageFlex is the entry point for the SDK. Construct one per
// application with New; it is safe for concurrent use.
type PassageFlex struct {
	// Auth groups the authentication flow operations.
	Auth *Auth

	// User groups the user and passkey device operations.
	User *User

	appID string
	cfg   *api.Configuration
}

// Option customizes a PassageFlex client.
type Option func(*options)

type options struct {
	serverURL  string
	httpClient *http.Client
	preResolve bool
}

// WithServerURL points the client at a non-production identity
// service endpoint, such as a local test server.
func WithServerURL(serverURL string) Option {
	return func(o *options) { o.serverURL = serverURL }
}

// WithHTTPClient supplies the http.Client used for every request.
// Use it to set timeouts, proxies, or instrumented transports.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) { o.httpClient = client }
}

// WithPreResolve makes CreateAuthenticateTransaction verify that the
// external ID maps to exactly one user before asking the service for
// a transaction. This turns an unknown or duplicated external ID into
// ErrUserNotFound or ErrInternalServer ahead of the transaction call,
// at the cost of one extra round trip.
func WithPreResolve() Option {
	return func(o *options) { o.preResolve = true }
}

// New constructs a client for the given application. appID and apiKey
// must be non-empty; apiKey is the application's management API key.
func New(appID, apiKey string, opts ...Option) (*PassageFlex, error) {
	if appID == "" {
		return nil, invalidArgument("app ID is required")
	}
	if apiKey == "" {
		return nil, invalidArgument("API key is required")
	}

	o := options{serverURL: DefaultServerURL}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := &api.Configuration{
		BasePath:       strings.TrimRight(o.serverURL, "/") + "/v1/apps/" + appID,
		APIKey:         apiKey,
		UserAgent:      "passageflex-go/" + Version,
		PassageVersion: "passage-flex-go " + Version,
		HTTPClient:     o.httpClient,
	}

	flex := &PassageFlex{appID: appID, cfg: cfg}
	res := resolver.New(cfg)
	flex.Auth = &Auth{cfg: cfg, resolver: res, preResolve: o.preResolve}
	flex.User = &User{cfg: cfg, resolver: res}
	return flex, nil
}

// AppID returns the application ID the client was constructed with.
func (p *PassageFlex) AppID() string { return p.appID }

// Convenience methods delegating to the sub-APIs, for callers who
// prefer a flat surface.

// CreateRegisterTransaction delegates to Auth.CreateRegisterTransaction.
func (p *PassageFlex) CreateRegisterTransaction(ctx context.Context, externalID, passkeyDisplayName string) (string, error) {
	return p.Auth.CreateRegisterTransaction(ctx, externalID, passkeyDisplayName)
}

// CreateAuthenticateTransaction delegates to Auth.CreateAuthenticateTransaction.
func (p *PassageFlex) CreateAuthenticateTransaction(ctx context.Context, externalID string) (string, error) {
	return p.Auth.CreateAuthenticateTransaction(ctx, externalID)
}

// VerifyNonce delegates to Auth.VerifyNonce.
func (p *PassageFlex) VerifyNonce(ctx context.Context, nonce string) (string, error) {
	return p.Auth.VerifyNonce(ctx, nonce)
}

// GetUser delegates to User.Get.
func (p *PassageFlex) GetUser(ctx context.Context, externalID string) (*models.User, error) {
	return p.User.Get(ctx, externalID)
}

// GetUserByID delegates to User.GetByID.
func (p *PassageFlex) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	return p.User.GetByID(ctx, userID)
}

// ListDevices delegates to User.ListDevices.
func (p *PassageFlex) ListDevices(ctx context.Context, externalID string) ([]models.Device, error) {
	return p.User.ListDevices(ctx, externalID)
}

// RevokeDevice delegates to User.RevokeDevice.
func (p *PassageFlex) RevokeDevice(ctx context.Context, externalID, deviceID string) error {
	return p.User.RevokeDevice(ctx, externalID, deviceID)
}
