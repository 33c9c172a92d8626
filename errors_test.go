package passageflex

import (
	"errors"
	"net/http"
	"testing"

	"github.com/sufield/passageflex/internal/api"
	"github.com/sufield/passageflex/internal/resolver"
)

func TestClassify_ResponseCodes(t *testing.T) {
	tests := []struct {
		code     string
		status   int
		wantKind Kind
	}{
		{"invalid_request", http.StatusBadRequest, KindInvalidRequest},
		{"invalid_access_token", http.StatusUnauthorized, KindInvalidAccessToken},
		{"invalid_nonce", http.StatusBadRequest, KindInvalidNonce},
		{"operation_not_allowed", http.StatusForbidden, KindOperationNotAllowed},
		{"user_not_found", http.StatusNotFound, KindUserNotFound},
		{"device_not_found", http.StatusNotFound, KindDeviceNotFound},
		{"user_has_no_passkeys", http.StatusConflict, KindUserHasNoPasskeys},
		{"internal_server_error", http.StatusInternalServerError, KindInternalServer},
		// an unrecognized code on a 5xx is still an internal error
		{"database_on_fire", http.StatusInternalServerError, KindInternalServer},
		// an unrecognized code below 500 is preserved as "other"
		{"app_not_found", http.StatusNotFound, KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			in := &api.ResponseError{
				StatusCode: tt.status,
				Body:       `{"error":"boom","code":"` + tt.code + `"}`,
				Document:   &api.ErrorDocument{Error: "boom", Code: tt.code},
			}
			err := classify(in)

			var got *Error
			if !errors.As(err, &got) {
				t.Fatalf("classify() = %T, want *Error", err)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", got.StatusCode, tt.status)
			}
			if got.Message != "boom" {
				t.Errorf("Message = %q, want service message", got.Message)
			}
		})
	}
}

func TestClassify_UnstructuredBody(t *testing.T) {
	in := &api.ResponseError{StatusCode: http.StatusBadGateway, Body: "<html>bad gateway</html>"}
	err := classify(in)

	var got *Error
	if !errors.As(err, &got) {
		t.Fatalf("classify() = %T, want *Error", err)
	}
	if got.Kind != KindOther {
		t.Errorf("Kind = %q, want %q", got.Kind, KindOther)
	}
	if got.Body != "<html>bad gateway</html>" {
		t.Errorf("Body = %q, raw text must survive", got.Body)
	}
}

func TestClassify_LocalFailures(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name       string
		in         error
		wantKind   Kind
		wantUnwrap error
	}{
		{"transport", &api.TransportError{Err: cause}, KindTransport, cause},
		{"decode", &api.DecodeError{Err: cause}, KindDecode, cause},
		{"resolver not found", resolver.ErrNotFound, KindUserNotFound, nil},
		{"resolver ambiguous", resolver.ErrAmbiguous, KindInternalServer, nil},
		{"unknown error", cause, KindOther, cause},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.in)

			var got *Error
			if !errors.As(err, &got) {
				t.Fatalf("classify() = %T, want *Error", err)
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if tt.wantUnwrap != nil && !errors.Is(err, tt.wantUnwrap) {
				t.Errorf("errors.Is(err, cause) = false, want underlying error reachable")
			}
		})
	}
}

func TestClassify_Passthrough(t *testing.T) {
	orig := invalidArgument("external ID is required")
	if got := classify(orig); got != orig {
		t.Errorf("classify(*Error) = %v, want the same value back", got)
	}
	if classify(nil) != nil {
		t.Error("classify(nil) must be nil")
	}
}

func TestError_SentinelMatching(t *testing.T) {
	err := classify(&api.ResponseError{
		StatusCode: http.StatusNotFound,
		Document:   &api.ErrorDocument{Error: "user not found", Code: api.CodeUserNotFound},
	})

	if !errors.Is(err, ErrUserNotFound) {
		t.Error("errors.Is(err, ErrUserNotFound) = false")
	}
	if errors.Is(err, ErrDeviceNotFound) {
		t.Error("errors.Is(err, ErrDeviceNotFound) = true for a user_not_found error")
	}
	if errors.Is(err, errors.New("user not found")) {
		t.Error("matched a non-*Error target")
	}
}

func TestError_Message(t *testing.T) {
	withMsg := &Error{Kind: KindInvalidNonce, Message: "nonce expired"}
	if got := withMsg.Error(); got != "invalid_nonce: nonce expired" {
		t.Errorf("Error() = %q", got)
	}
	bare := &Error{Kind: KindTransport}
	if got := bare.Error(); got != "transport" {
		t.Errorf("Error() = %q", got)
	}
}
