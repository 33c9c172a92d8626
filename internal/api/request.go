package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"

	"github.com/sufield/passageflex/internal/debug"
)

// do performs one round trip against cfg.BasePath+path. When in is
// non-nil it is sent as a JSON body; when out is non-nil the success
// body is decoded into it. Any status below 400 counts as success.
func do(ctx context.Context, cfg *Configuration, method, path string, query url.Values, in, out any) error {
	u := cfg.BasePath + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return &DecodeError{Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &TransportError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	if cfg.PassageVersion != "" {
		req.Header.Set("Passage-Version", cfg.PassageVersion)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	debug.GetLogger().Debugf("%s %s", method, u)

	resp, err := cfg.httpClient().Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Err: err}
	}

	debug.GetLogger().Debugf("%s %s -> %d (%d bytes)", method, u, resp.StatusCode, len(data))

	if resp.StatusCode >= http.StatusBadRequest {
		return newResponseError(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}
