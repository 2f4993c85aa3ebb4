package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidConnectConfigs indicates invalid connect settings
	// (for example, a negative timeout).
	ErrInvalidConnectConfigs = errors.New("invalid connect configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidWorkersConfigs indicates invalid background job settings.
	ErrInvalidWorkersConfigs = errors.New("invalid workers configuration")
)
