package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv builds a StructuredConfig from the process environment.
// Unset variables leave their fields zero so they never win the merge
// against defaults.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
