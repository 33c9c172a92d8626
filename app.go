package passageflex

import (
	"context"

	"github.com/sufield/passageflex/internal/api"
	"github.com/sufield/passageflex/models"
)

// GetApp fetches the application's settings from the identity
// service. Useful as a startup check that the app ID and API key are
// valid, and for reading the configured auth origin.
func (p *PassageFlex) GetApp(ctx context.Context) (*models.AppInfo, error) {
	resp, err := api.GetApp(ctx, p.cfg)
	if err != nil {
		return nil, classify(err)
	}
	return &resp.App, nil
}
