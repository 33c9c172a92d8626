// Package config loads SDK credentials from YAML files and the
// environment. File values are applied first and environment
// variables override them, so a checked-in config can hold the app ID
// while the API key stays in the deployment environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config carries everything needed to construct a client.
type Config struct {
	// AppID is the identity service application ID.
	AppID string `yaml:"app_id" env:"PASSAGE_APP_ID"`

	// APIKey is the management API key for the application.
	APIKey string `yaml:"api_key" env:"PASSAGE_API_KEY"`

	// ServerURL overrides the identity service base URL. Empty means
	// the production endpoint.
	ServerURL string `yaml:"server_url" env:"PASSAGE_SERVER_URL"`
}

// Load reads path as YAML, then applies environment overrides.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("apply environment overrides: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv builds a Config from environment variables alone.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports missing required fields.
func (c *Config) Validate() error {
	if c.AppID == "" {
		return errors.New("config: app_id is required")
	}
	if c.APIKey == "" {
		return errors.New("config: api_key is required")
	}
	return nil
}
