package passageflex

import "github.com/sufield/passageflex/internal/config"

// NewFromFile constructs a client from a YAML config file, with
// environment overrides applied on top.
//
// Configuration:
//
//	app_id: your-app-id
//	api_key: your-api-key
//	server_url: https://api.passage.id   # optional
//
// PASSAGE_APP_ID, PASSAGE_API_KEY, and PASSAGE_SERVER_URL override
// the corresponding file values when set.
func NewFromFile(path string, opts ...Option) (*PassageFlex, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return newFromConfig(cfg, opts)
}

// NewFromEnv constructs a client from PASSAGE_APP_ID, PASSAGE_API_KEY,
// and optionally PASSAGE_SERVER_URL.
func NewFromEnv(opts ...Option) (*PassageFlex, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	return newFromConfig(cfg, opts)
}

func newFromConfig(cfg *config.Config, opts []Option) (*PassageFlex, error) {
	if cfg.ServerURL != "" {
		opts = append([]Option{WithServerURL(cfg.ServerURL)}, opts...)
	}
	return New(cfg.AppID, cfg.APIKey, opts...)
}
