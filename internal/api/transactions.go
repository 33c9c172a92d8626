package api

import (
	"context"
	"net/http"
)

// CreateTransactionRegisterRequest starts a registration ceremony for
// the given external ID. PasskeyDisplayName is the label the user sees
// when logging in with the resulting passkey.
type CreateTransactionRegisterRequest struct {
	ExternalID         string `json:"external_id"`
	PasskeyDisplayName string `json:"passkey_display_name"`
}

// CreateTransactionAuthenticateRequest starts an authentication
// ceremony for the given external ID.
type CreateTransactionAuthenticateRequest struct {
	ExternalID string `json:"external_id"`
}

// CreateTransactionResponse carries the transaction ID the caller's
// front end uses to drive the WebAuthn ceremony.
type CreateTransactionResponse struct {
	TransactionID string `json:"transaction_id"`
}

// CreateRegisterTransaction creates a registration transaction. The
// remote service decides how to treat repeated registrations for the
// same external ID.
func CreateRegisterTransaction(ctx context.Context, cfg *Configuration, req CreateTransactionRegisterRequest) (*CreateTransactionResponse, error) {
	var out CreateTransactionResponse
	if err := do(ctx, cfg, http.MethodPost, "/transactions/register", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateAuthenticateTransaction creates an authentication transaction.
// The remote service rejects users without registered passkeys with a
// conflict-status error coded user_has_no_passkeys.
func CreateAuthenticateTransaction(ctx context.Context, cfg *Configuration, req CreateTransactionAuthenticateRequest) (*CreateTransactionResponse, error) {
	var out CreateTransactionResponse
	if err := do(ctx, cfg, http.MethodPost, "/transactions/authenticate", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
