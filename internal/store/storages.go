package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bitcoin-connect/internal/config"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
)

// ClientStorages groups the client-side storage backends into a single value
// that is handed to the state store. Close releases the underlying handle.
type ClientStorages struct {
	// KeyValue persists the reconnect config and currency preference.
	KeyValue KeyValueStorage

	close func() error
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. For the "memory" DSN returns an in-memory storage.
//  2. Otherwise opens the SQLite file at cfg.DSN, creating it if needed.
//  3. Runs pending schema migrations via [DB.Migrate].
//
// Returns an error if the database cannot be opened or migrated.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("dsn", cfg.DSN).Msg("creating new storages...")

	if cfg.InMemory() {
		mem := NewMemoryKeyValueStorage()
		return &ClientStorages{KeyValue: mem, close: mem.Close}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		KeyValue: NewSQLiteKeyValueStorage(db, log),
		close:    db.Close,
	}, nil
}

// Close releases the storage backend.
func (s *ClientStorages) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}
