package store

import (
	"database/sql"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/migrations"
)

// DB is the SQLite handle behind the key-value storage.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the kv_items schema to the latest embedded version.
func (db *DB) Migrate() error {
	start := time.Now()
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("schema migration failed")
		return err
	}

	db.logger.Debug().Str("func", "DB.Migrate").Dur("took", time.Since(start)).Msg("schema is up to date")
	return nil
}

// Close closes the handle and logs a failure.
func (db *DB) Close() error {
	if err := db.DB.Close(); err != nil {
		db.logger.Err(err).Str("func", "DB.Close").Msg("error closing database")
		return err
	}
	return nil
}
