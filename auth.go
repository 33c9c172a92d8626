package passageflex

import (
	"context"

	"github.com/sufield/passageflex/internal/api"
	"github.com/sufield/passageflex/internal/resolver"
)

// Auth holds the authentication flow operations: starting
// registration and authentication transactions and verifying the
// nonce produced by a completed WebAuthn ceremony.
type Auth struct {
	cfg        *api.Configuration
	resolver   *resolver.Resolver
	preResolve bool
}

// CreateRegisterTransaction starts a passkey registration for the
// user identified by externalID, creating the user on the identity
// service if needed. passkeyDisplayName labels the new passkey in
// the user's device list. Returns the transaction ID to hand to the
// client-side SDK.
func (a *Auth) CreateRegisterTransaction(ctx context.Context, externalID, passkeyDisplayName string) (string, error) {
	if externalID == "" {
		return "", invalidArgument("external ID is required")
	}
	if passkeyDisplayName == "" {
		return "", invalidArgument("passkey display name is required")
	}
	resp, err := api.CreateRegisterTransaction(ctx, a.cfg, api.CreateTransactionRegisterRequest{
		ExternalID:         externalID,
		PasskeyDisplayName: passkeyDisplayName,
	})
	if err != nil {
		return "", classify(err)
	}
	return resp.TransactionID, nil
}

// CreateAuthenticateTransaction starts a passkey authentication for
// an existing user. Returns the transaction ID to hand to the
// client-side SDK. Fails with ErrUserNotFound when the external ID is
// unknown and ErrUserHasNoPasskeys when the user has nothing to
// authenticate with.
func (a *Auth) CreateAuthenticateTransaction(ctx context.Context, externalID string) (string, error) {
	if externalID == "" {
		return "", invalidArgument("external ID is required")
	}
	if a.preResolve {
		if _, err := a.resolver.Resolve(ctx, externalID); err != nil {
			return "", classify(err)
		}
	}
	resp, err := api.CreateAuthenticateTransaction(ctx, a.cfg, api.CreateTransactionAuthenticateRequest{
		ExternalID: externalID,
	})
	if err != nil {
		return "", classify(err)
	}
	return resp.TransactionID, nil
}

// VerifyNonce exchanges the nonce produced by a completed WebAuthn
// ceremony for the authenticated user's external ID. A nonce is
// single-use; an expired, unknown, or reused nonce fails with
// ErrInvalidNonce.
func (a *Auth) VerifyNonce(ctx context.Context, nonce string) (string, error) {
	if nonce == "" {
		return "", invalidArgument("nonce is required")
	}
	resp, err := api.AuthenticateVerifyNonce(ctx, a.cfg, api.NonceRequest{Nonce: nonce})
	if err != nil {
		return "", classify(err)
	}
	return resp.ExternalID, nil
}
