package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// thesisdesk client. It aggregates all sub-configurations and is
// populated by merging explicit overrides, environment variables, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the backend address and outbound request settings.
	API API `envPrefix:"API_"`

	// Session holds credential storage settings.
	Session Session `envPrefix:"SESSION_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from overrides and environment variables.
	// Env: THESISDESK_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// API holds network settings for the outbound HTTP client.
type API struct {
	// Address is the base URL of the backend API
	// (e.g. "https://capstone.example.edu").
	// Env: THESISDESK_API_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: THESISDESK_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Session holds credential storage settings.
type Session struct {
	// DBPath is the SQLite file used for remembered ("remember me")
	// sessions. In-memory storage is used when the user does not ask to
	// be remembered.
	// Env: THESISDESK_SESSION_DB_PATH
	DBPath string `env:"DB_PATH"`

	// TokenLeeway is subtracted from the access-token expiry when
	// deciding whether a proactive refresh is due (e.g. "30s").
	// Env: THESISDESK_SESSION_TOKEN_LEEWAY
	TokenLeeway time.Duration `env:"TOKEN_LEEWAY"`
}

// Workers holds background worker settings.
type Workers struct {
	// RefreshInterval defines how often the watch worker refetches the
	// entity stores (e.g. "1m").
	// Env: THESISDESK_WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults applied by validate for fields left unset by every source.
const (
	DefaultRequestTimeout  = 15 * time.Second
	DefaultTokenLeeway     = 30 * time.Second
	DefaultRefreshInterval = time.Minute
	DefaultSessionDBPath   = "thesisdesk-session.db"
)

// Get loads, merges, and validates the configuration. overrides carries
// the values collected from CLI flags and takes precedence over
// environment variables, which in turn take precedence over the JSON
// file (path resolved from the higher-priority sources).
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func Get(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		build()
}

// validate fills defaults and checks the merged config before use.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.Address == "" {
		return ErrInvalidAPIConfigs
	}
	if cfg.API.RequestTimeout <= 0 {
		cfg.API.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Session.TokenLeeway <= 0 {
		cfg.Session.TokenLeeway = DefaultTokenLeeway
	}
	if cfg.Session.DBPath == "" {
		cfg.Session.DBPath = DefaultSessionDBPath
	}
	if cfg.Workers.RefreshInterval <= 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}

	return nil
}
