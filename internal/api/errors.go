package api

import (
	"encoding/json"
	"fmt"
)

// Error codes carried by structured error documents. The remote service
// keys every machine-readable failure on one of these; anything else is
// treated as unrecognized by the caller.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeInvalidAccessToken  = "invalid_access_token"
	CodeInvalidNonce        = "invalid_nonce"
	CodeOperationNotAllowed = "operation_not_allowed"
	CodeUserNotFound        = "user_not_found"
	CodeDeviceNotFound      = "device_not_found"
	CodeUserHasNoPasskeys   = "user_has_no_passkeys"
	CodeInternalServerError = "internal_server_error"
)

// ErrorDocument is the structured error body shared by every non-2xx
// response: {"error": "...", "code": "..."}.
type ErrorDocument struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ResponseError is a non-2xx response from the remote service. Body
// always preserves the raw response text; Document is the parsed error
// payload, or nil when the body did not parse as one.
type ResponseError struct {
	StatusCode int
	Body       string
	Document   *ErrorDocument
}

func (e *ResponseError) Error() string {
	if e.Document != nil {
		return fmt.Sprintf("passage api: status %d: %s (%s)", e.StatusCode, e.Document.Error, e.Document.Code)
	}
	return fmt.Sprintf("passage api: status %d: %s", e.StatusCode, e.Body)
}

// newResponseError builds a ResponseError from a failed response,
// attaching the parsed document only when the body matches the known
// shape. An unrecognized body is never discarded.
func newResponseError(statusCode int, body []byte) *ResponseError {
	re := &ResponseError{StatusCode: statusCode, Body: string(body)}
	var doc ErrorDocument
	if err := json.Unmarshal(body, &doc); err == nil && doc.Code != "" {
		re.Document = &doc
	}
	return re
}

// TransportError is a connection-level failure: the request could not
// be built, sent, or its body read. The response never reached JSON
// decoding.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("passage transport: %v", e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError is a serialization failure: a request body could not be
// encoded, or a success response body did not parse as the expected
// shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("passage decode: %v", e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }
