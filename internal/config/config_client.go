package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// ClientStorage holds the persistence settings used by the client.
type ClientStorage struct {
	// DSN is the SQLite connection string, or "memory".
	DSN string
}

// InMemory reports whether the client should keep its persisted keys in
// process memory only.
func (s ClientStorage) InMemory() bool {
	return s.DSN == "memory" || s.DSN == ":memory:"
}

// ClientConnect holds the settings applied to connection attempts.
type ClientConnect struct {
	// Timeout bounds a single connect attempt. Zero disables it.
	Timeout time.Duration
}

// ClientLog holds the client logger settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientWorkers holds the settings of the client background jobs.
type ClientWorkers struct {
	BalanceRefresh time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Storage contains persistence settings.
	Storage ClientStorage
	// Connect contains connection attempt settings.
	Connect ClientConnect
	// Log contains log file settings.
	Log ClientLog
	// Widget is the partial presentation config; it is merged over the
	// widget defaults by the state store.
	Widget models.BitcoinConnectConfig
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Storage: ClientStorage{DSN: cfg.Storage.DB.DSN},
		Connect: ClientConnect{Timeout: cfg.Connect.Timeout},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		Widget: models.BitcoinConnectConfig{
			AppName:     cfg.Widget.AppName,
			AppIcon:     cfg.Widget.AppIcon,
			ShowBalance: cfg.Widget.ShowBalance,
		},
		Workers: ClientWorkers{BalanceRefresh: cfg.Workers.BalanceRefresh},
	}

	return clientCfg, clientCfg.validate()
}
