package api

import (
	"net/http"
	"time"
)

// defaultTimeout bounds a whole request/response cycle when the caller
// does not supply an HTTP client of their own.
const defaultTimeout = 30 * time.Second

// Configuration holds everything a resource client needs to reach the
// remote service: the app-scoped base path, the bearer credential, and
// the identification headers sent with every request. It is constructed
// once per SDK client and must not be mutated afterwards; a single
// value is safe for concurrent use by any number of in-flight calls.
type Configuration struct {
	// BasePath is "{server_url}/v1/apps/{app_id}", no trailing slash.
	BasePath string

	// APIKey is sent as the bearer credential on every request.
	APIKey string

	// UserAgent identifies the SDK to the remote service.
	UserAgent string

	// PassageVersion is the value of the Passage-Version header.
	PassageVersion string

	// HTTPClient performs the round trips. Nil selects a default client
	// with a 30 second timeout.
	HTTPClient *http.Client
}

func (c *Configuration) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: defaultTimeout}
}
