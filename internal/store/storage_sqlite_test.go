package store

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bitcoin-connect/internal/config"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
)

func newTestKVStorage(t *testing.T) (*sqliteKeyValueStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	s := NewSQLiteKeyValueStorage(&DB{DB: db, logger: l}, l).(*sqliteKeyValueStorage)
	s.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }
	return s, mock
}

func TestSQLiteGetItem_Found(t *testing.T) {
	s, mock := newTestKVStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_items WHERE key = ?")).
		WithArgs("bc:currency").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("usd"))

	v, ok, err := s.GetItem(context.Background(), "bc:currency")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "usd", v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteGetItem_NotFound(t *testing.T) {
	s, mock := newTestKVStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM kv_items")).
		WithArgs("bc:config").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	v, ok, err := s.GetItem(context.Background(), "bc:config")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSQLiteGetItem_DBError(t *testing.T) {
	s, mock := newTestKVStorage(t)

	mock.ExpectQuery("SELECT value FROM kv_items").
		WillReturnError(errors.New("disk I/O error"))

	_, ok, err := s.GetItem(context.Background(), "bc:config")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestSQLiteSetItem_Upserts(t *testing.T) {
	s, mock := newTestKVStorage(t)

	mock.ExpectExec("INSERT INTO kv_items").
		WithArgs("bc:currency", "eur", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.SetItem(context.Background(), "bc:currency", "eur"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteSetItem_DBError(t *testing.T) {
	s, mock := newTestKVStorage(t)

	mock.ExpectExec("INSERT INTO kv_items").
		WillReturnError(errors.New("database is locked"))

	err := s.SetItem(context.Background(), "bc:currency", "eur")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestSQLiteRemoveItem(t *testing.T) {
	s, mock := newTestKVStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM kv_items WHERE key = ?")).
		WithArgs("bc:config").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.RemoveItem(context.Background(), "bc:config"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteRemoveItem_DBError(t *testing.T) {
	s, mock := newTestKVStorage(t)

	mock.ExpectExec("DELETE FROM kv_items").
		WillReturnError(errors.New("database is locked"))

	assert.ErrorIs(t, s.RemoveItem(context.Background(), "bc:config"), ErrExecutingStatement)
}

func TestSQLite_EmptyKey(t *testing.T) {
	s, mock := newTestKVStorage(t)
	ctx := context.Background()

	_, _, err := s.GetItem(ctx, "")
	assert.ErrorIs(t, err, ErrEmptyKey)
	assert.ErrorIs(t, s.SetItem(ctx, "", "v"), ErrEmptyKey)
	assert.ErrorIs(t, s.RemoveItem(ctx, ""), ErrEmptyKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestClientStorages_SQLiteRoundTrip runs the real driver and migrations
// against a temporary database file.
func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "bc.db")

	storages, err := NewClientStorages(ctx, config.ClientStorage{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	kv := storages.KeyValue

	require.NoError(t, kv.SetItem(ctx, "bc:currency", "usd"))
	require.NoError(t, kv.SetItem(ctx, "bc:currency", "eur"))

	v, ok, err := kv.GetItem(ctx, "bc:currency")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "eur", v)

	require.NoError(t, kv.RemoveItem(ctx, "bc:currency"))
	require.NoError(t, kv.RemoveItem(ctx, "bc:currency"))

	_, ok, err = kv.GetItem(ctx, "bc:currency")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClientStorages_SQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DSN: filepath.Join(t.TempDir(), "bc.db")}

	first, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.KeyValue.SetItem(ctx, "bc:config", `{"connectorType":"dev"}`))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	v, ok, err := second.KeyValue.GetItem(ctx, "bc:config")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"connectorType":"dev"}`, v)
}
