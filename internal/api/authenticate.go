package api

import (
	"context"
	"net/http"
)

// NonceRequest carries the one-time token produced at the end of a
// WebAuthn ceremony.
type NonceRequest struct {
	Nonce string `json:"nonce"`
}

// AuthenticateVerifyNonceResponse maps a verified nonce back to the
// external ID the ceremony belongs to.
type AuthenticateVerifyNonceResponse struct {
	ExternalID string `json:"external_id"`
}

// AuthenticateVerifyNonce exchanges a ceremony nonce for the external
// ID it was issued for. Verification is single-use on the server side;
// a consumed or expired nonce fails with code invalid_nonce.
func AuthenticateVerifyNonce(ctx context.Context, cfg *Configuration, req NonceRequest) (*AuthenticateVerifyNonceResponse, error) {
	var out AuthenticateVerifyNonceResponse
	if err := do(ctx, cfg, http.MethodPost, "/authenticate/verify", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
