package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "passage.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
app_id: test_app_id
api_key: test_api_key
server_url: http://localhost:8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test_app_id", cfg.AppID)
	assert.Equal(t, "test_api_key", cfg.APIKey)
	assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
app_id: file_app_id
api_key: file_api_key
`)
	t.Setenv("PASSAGE_APP_ID", "env_app_id")
	t.Setenv("PASSAGE_SERVER_URL", "http://localhost:9999")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env_app_id", cfg.AppID)
	assert.Equal(t, "file_api_key", cfg.APIKey, "unset variables keep the file value")
	assert.Equal(t, "http://localhost:9999", cfg.ServerURL)
}

func TestLoad_NonexistentFile(t *testing.T) {
	_, err := Load("/nonexistent/passage.yaml")
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "app_id: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PASSAGE_APP_ID", "env_app_id")
	t.Setenv("PASSAGE_API_KEY", "env_api_key")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "env_app_id", cfg.AppID)
	assert.Equal(t, "env_api_key", cfg.APIKey)
	assert.Empty(t, cfg.ServerURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"complete", Config{AppID: "a", APIKey: "k"}, false},
		{"missing app id", Config{APIKey: "k"}, true},
		{"missing api key", Config{AppID: "a"}, true},
		{"empty", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
