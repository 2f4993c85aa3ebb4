package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const (
	defaultDSN            = "bitcoin-connect.db"
	defaultLogLevel       = "info"
	defaultConnectTimeout = time.Duration(0)
	defaultBalanceRefresh = 30 * time.Second
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in order. Later configs override
// earlier ones for every non-zero field.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Connect: Connect{Timeout: defaultConnectTimeout},
		Log:     Log{Level: defaultLogLevel},
		Workers: Workers{BalanceRefresh: defaultBalanceRefresh},
	})
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
