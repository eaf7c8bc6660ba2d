package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSONConfig(t *testing.T, v any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	payload, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o600))
	return path
}

func TestGet_EnvOnly(t *testing.T) {
	t.Setenv("THESISDESK_API_ADDRESS", "https://capstone.example.edu")
	t.Setenv("THESISDESK_API_REQUEST_TIMEOUT", "20s")

	cfg, err := Get(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://capstone.example.edu", cfg.API.Address)
	assert.Equal(t, 20*time.Second, cfg.API.RequestTimeout)
}

func TestGet_DefaultsApplied(t *testing.T) {
	t.Setenv("THESISDESK_API_ADDRESS", "http://localhost:8080")

	cfg, err := Get(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultRequestTimeout, cfg.API.RequestTimeout)
	assert.Equal(t, DefaultTokenLeeway, cfg.Session.TokenLeeway)
	assert.Equal(t, DefaultRefreshInterval, cfg.Workers.RefreshInterval)
	assert.Equal(t, DefaultSessionDBPath, cfg.Session.DBPath)
}

func TestGet_MissingAddressFails(t *testing.T) {
	cfg, err := Get(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAPIConfigs)
	assert.Nil(t, cfg)
}

func TestGet_OverridesWinOverEnv(t *testing.T) {
	t.Setenv("THESISDESK_API_ADDRESS", "http://from-env:8080")

	cfg, err := Get(&StructuredConfig{API: API{Address: "http://from-flag:9090"}})
	require.NoError(t, err)

	assert.Equal(t, "http://from-flag:9090", cfg.API.Address)
}

func TestGet_JSONFillsGapsOnly(t *testing.T) {
	path := writeJSONConfig(t, map[string]any{
		"api": map[string]any{
			"address":         "http://from-json:7070",
			"request_timeout": "45s",
		},
		"workers": map[string]any{
			"refresh_interval": "2m",
		},
	})

	t.Setenv("THESISDESK_CONFIG", path)
	t.Setenv("THESISDESK_API_ADDRESS", "http://from-env:8080")

	cfg, err := Get(nil)
	require.NoError(t, err)

	// env wins for the address, json fills the rest
	assert.Equal(t, "http://from-env:8080", cfg.API.Address)
	assert.Equal(t, 45*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
}

func TestGet_BrokenJSONFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	t.Setenv("THESISDESK_CONFIG", path)
	t.Setenv("THESISDESK_API_ADDRESS", "http://localhost:8080")

	_, err := Get(nil)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"string form", `"1h30m"`, 90 * time.Minute},
		{"numeric nanoseconds", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
