package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the
// caarlos0/env library. Struct fields are mapped via their `env` and
// `envPrefix` tags defined on [StructuredConfig] and its nested types.
// All variables share the THESISDESK_ prefix.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{Prefix: "THESISDESK_"})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
