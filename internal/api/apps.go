package api

import (
	"context"
	"net/http"

	"github.com/sufield/passageflex/models"
)

// GetAppResponse wraps the app document returned by the app info
// endpoint.
type GetAppResponse struct {
	App models.AppInfo `json:"app"`
}

// GetApp fetches the app configuration for the app the Configuration
// is scoped to.
func GetApp(ctx context.Context, cfg *Configuration) (*GetAppResponse, error) {
	var out GetAppResponse
	if err := do(ctx, cfg, http.MethodGet, "/", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
