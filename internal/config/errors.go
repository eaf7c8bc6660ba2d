package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after merging all sources.
var (
	// ErrInvalidAPIConfigs indicates invalid backend API settings (for
	// example, a missing address).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
)
