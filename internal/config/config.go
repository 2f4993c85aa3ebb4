// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-bitcoin-connect client. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Storage holds configuration for the local key-value persistence used
	// to remember the last connector and currency.
	Storage Storage `envPrefix:"STORAGE_"`

	// Connect holds settings for connection attempts.
	Connect Connect `envPrefix:"CONNECT_"`

	// Log holds settings for the client log file.
	Log Log `envPrefix:"LOG_"`

	// Widget holds presentation options merged over the widget defaults.
	Widget Widget `envPrefix:"WIDGET_"`

	// Workers holds settings for background jobs of the client.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "bitcoin-connect.db"). The special value "memory" selects a
	// non-persistent in-process store.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Connect holds settings applied to every connection attempt.
type Connect struct {
	// Timeout bounds a single connect attempt (init, enable and info
	// fetch). Zero disables the deadline.
	// Env: CONNECT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Log holds settings for the client logger.
type Log struct {
	// File is the path of the log file. Empty means "logs" next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Widget holds the presentation options exposed through configuration.
type Widget struct {
	// AppName is shown in the modal header.
	// Env: WIDGET_APP_NAME
	AppName string `env:"APP_NAME"`

	// AppIcon is an URL or path of the application icon.
	// Env: WIDGET_APP_ICON
	AppIcon string `env:"APP_ICON"`

	// ShowBalance toggles the balance display. Nil keeps the default.
	// Env: WIDGET_SHOW_BALANCE
	ShowBalance *bool `env:"SHOW_BALANCE"`
}

// Workers holds settings for the client background jobs.
type Workers struct {
	// BalanceRefresh is the interval between balance refreshes while a
	// wallet is connected.
	// Env: WORKERS_BALANCE_REFRESH
	BalanceRefresh time.Duration `env:"BALANCE_REFRESH"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags (args)
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
