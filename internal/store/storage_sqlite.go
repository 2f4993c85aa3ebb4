package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
)

type sqliteKeyValueStorage struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteKeyValueStorage returns a [KeyValueStorage] backed by the kv_items
// table of db. The schema must already be migrated.
func NewSQLiteKeyValueStorage(db *DB, log *logger.Logger) KeyValueStorage {
	return &sqliteKeyValueStorage{
		db:     db,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqliteKeyValueStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrEmptyKey
	}

	query, args, err := buildGetItemQuery(key)
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.GetItem").
			Str("key", key).
			Msg("failed to read kv item")
		return "", false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, true, nil
}

func (s *sqliteKeyValueStorage) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildSetItemQuery(key, value, s.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.SetItem").
			Str("key", key).
			Msg("failed to upsert kv item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStorage) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := buildRemoveItemQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).
			Str("func", "sqliteKeyValueStorage.RemoveItem").
			Str("key", key).
			Msg("failed to delete kv item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
