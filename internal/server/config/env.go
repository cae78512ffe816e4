package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with GOPHAUTH_* environment variables. Variables
// that are not set leave the current value untouched. Malformed values panic,
// in line with the JSON and flag layers.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
