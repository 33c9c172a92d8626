package passageflex

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sufield/passageflex/internal/api"
	"github.com/sufield/passageflex/internal/resolver"
)

// Kind partitions every error the SDK can return into a small set of
// categories a caller can branch on. The remote service signals most
// of these through a machine-readable code in the error body; the
// rest arise locally (transport failures, payload decoding).
type Kind string

const (
	// KindTransport covers network-level failures: connection
	// refused, DNS, TLS, context cancellation, timeouts.
	KindTransport Kind = "transport"

	// KindDecode covers payloads that could not be encoded or
	// decoded on the client side.
	KindDecode Kind = "decode"

	KindInvalidRequest      Kind = "invalid_request"
	KindInvalidAccessToken  Kind = "invalid_access_token"
	KindInvalidNonce        Kind = "invalid_nonce"
	KindOperationNotAllowed Kind = "operation_not_allowed"
	KindDeviceNotFound      Kind = "device_not_found"
	KindUserNotFound        Kind = "user_not_found"
	KindUserHasNoPasskeys   Kind = "user_has_no_passkeys"
	KindInternalServer      Kind = "internal_server_error"

	// KindOther is the catch-all for failures the taxonomy does not
	// recognize: unknown error codes, non-JSON error bodies. The raw
	// server response is preserved on the Error so nothing is lost.
	KindOther Kind = "other"
)

// Error is the single error type returned by every SDK operation.
// Callers match on it two ways: errors.Is against the Err* sentinels
// for branching, or errors.As for the HTTP status and raw body.
type Error struct {
	// Kind categorizes the failure.
	Kind Kind

	// Message is a human-readable description. For service-reported
	// failures it is the message from the error body.
	Message string

	// StatusCode is the HTTP status of the failed response, or zero
	// when the failure never reached the service.
	StatusCode int

	// Body is the raw response body for service-reported failures.
	Body string

	cause error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying transport or decoding error, if any.
func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error with the same Kind, so
// errors.Is(err, passageflex.ErrUserNotFound) works regardless of the
// message or status attached to the concrete error.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinel values for errors.Is matching. Each carries only a Kind;
// the Is method above makes any error of that Kind match it.
var (
	ErrTransport           = &Error{Kind: KindTransport}
	ErrDecode              = &Error{Kind: KindDecode}
	ErrInvalidRequest      = &Error{Kind: KindInvalidRequest}
	ErrInvalidAccessToken  = &Error{Kind: KindInvalidAccessToken}
	ErrInvalidNonce        = &Error{Kind: KindInvalidNonce}
	ErrOperationNotAllowed = &Error{Kind: KindOperationNotAllowed}
	ErrDeviceNotFound      = &Error{Kind: KindDeviceNotFound}
	ErrUserNotFound        = &Error{Kind: KindUserNotFound}
	ErrUserHasNoPasskeys   = &Error{Kind: KindUserHasNoPasskeys}
	ErrInternalServer      = &Error{Kind: KindInternalServer}
	ErrOther               = &Error{Kind: KindOther}
)

// kindForCode maps the service's machine-readable error codes onto
// Kinds. Codes outside this table fall through to KindOther.
var kindForCode = map[string]Kind{
	api.CodeInvalidRequest:      KindInvalidRequest,
	api.CodeInvalidAccessToken:  KindInvalidAccessToken,
	api.CodeInvalidNonce:        KindInvalidNonce,
	api.CodeOperationNotAllowed: KindOperationNotAllowed,
	api.CodeDeviceNotFound:      KindDeviceNotFound,
	api.CodeUserNotFound:        KindUserNotFound,
	api.CodeUserHasNoPasskeys:   KindUserHasNoPasskeys,
	api.CodeInternalServerError: KindInternalServer,
}

// classify converts any error surfaced by the internal layers into
// the public taxonomy. It is total: every error comes back as *Error,
// and an already-classified *Error passes through untouched.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var already *Error
	if errors.As(err, &already) {
		return already
	}

	switch {
	case errors.Is(err, resolver.ErrNotFound):
		return &Error{Kind: KindUserNotFound, Message: "user not found"}
	case errors.Is(err, resolver.ErrAmbiguous):
		// Duplicate external IDs are a server-side integrity fault,
		// not a caller mistake, so they surface as internal errors.
		return &Error{Kind: KindInternalServer, Message: "multiple users found for external ID"}
	}

	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		return classifyResponse(respErr)
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &Error{Kind: KindTransport, Message: transportErr.Err.Error(), cause: transportErr.Err}
	}

	var decodeErr *api.DecodeError
	if errors.As(err, &decodeErr) {
		return &Error{Kind: KindDecode, Message: decodeErr.Err.Error(), cause: decodeErr.Err}
	}

	return &Error{Kind: KindOther, Message: err.Error(), cause: err}
}

func classifyResponse(respErr *api.ResponseError) *Error {
	doc := respErr.Document
	if doc == nil {
		// The body was not a recognizable error document. Keep the
		// raw text so callers can still see what the server said.
		return &Error{
			Kind:       KindOther,
			Message:    respErr.Body,
			StatusCode: respErr.StatusCode,
			Body:       respErr.Body,
		}
	}

	kind, ok := kindForCode[doc.Code]
	if !ok {
		// A structured document on a 5xx is an internal error even
		// when the code itself is unknown.
		if respErr.StatusCode >= http.StatusInternalServerError {
			kind = KindInternalServer
		} else {
			kind = KindOther
		}
	}
	return &Error{
		Kind:       kind,
		Message:    doc.Error,
		StatusCode: respErr.StatusCode,
		Body:       respErr.Body,
	}
}

// invalidArgument builds the local validation error used when a
// caller passes an empty required argument.
func invalidArgument(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}
