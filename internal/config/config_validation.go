// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/rs/zerolog"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Connect.Timeout < 0 {
		return ErrInvalidConnectConfigs
	}

	if cfg.Workers.BalanceRefresh < 0 {
		return ErrInvalidWorkersConfigs
	}

	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return ErrInvalidLogConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Connect.Timeout < 0 {
		return ErrInvalidConnectConfigs
	}

	if cfg.Workers.BalanceRefresh < 0 {
		return ErrInvalidWorkersConfigs
	}

	return nil
}
