package state

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/internal/config"
	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/mock"
	"github.com/MKhiriev/go-bitcoin-connect/internal/store"
	"github.com/MKhiriev/go-bitcoin-connect/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSQLiteStorage(t *testing.T) store.KeyValueStorage {
	t.Helper()
	storages, err := store.NewClientStorages(context.Background(),
		config.ClientStorage{DSN: filepath.Join(t.TempDir(), "bc.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages.KeyValue
}

// gatedStorage holds KeyConfig writes until release is closed.
type gatedStorage struct {
	*store.MemoryKeyValueStorage
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStorage) SetItem(ctx context.Context, key, value string) error {
	if key == KeyConfig {
		close(g.entered)
		<-g.release
	}
	return g.MemoryKeyValueStorage.SetItem(ctx, key, value)
}

func TestStore_Connect_TimeoutRemovesPersistedConfig(t *testing.T) {
	storage := newSQLiteStorage(t)
	registry := connector.NewRegistry()
	require.NoError(t, registry.Register(models.ConnectorTypeDev, connector.DevFactory(0)))
	require.NoError(t, registry.Register(models.ConnectorTypeNWC, connector.DevFactory(time.Minute)))

	s, err := New(storage, registry, logger.Nop(), WithConnectTimeout(50*time.Millisecond))
	require.NoError(t, err)

	require.NoError(t, s.Connect(context.Background(), devConfig("A")))
	_, persisted := storedConfig(t, storage)
	require.True(t, persisted)

	err = s.Connect(context.Background(), models.ConnectorConfig{ConnectorType: models.ConnectorTypeNWC, ConnectorName: "B"})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	st := s.Get()
	assert.False(t, st.Connected)
	assert.Nil(t, st.ConnectorConfig)
	_, persisted = storedConfig(t, storage)
	assert.False(t, persisted, "a failed connect must forget the previous wallet")
}

func TestStore_Connect_PersistsAfterCallerCancel(t *testing.T) {
	ctrl := gomock.NewController(t)

	storage := newSQLiteStorage(t)
	registry := connector.NewRegistry()
	conn := mock.NewMockConnector(ctrl)
	provider := mock.NewMockProvider(ctrl)
	register(t, registry, models.ConnectorTypeNWC, conn)

	s, err := New(storage, registry, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	conn.EXPECT().Init(gomock.Any()).Return(provider, nil)
	provider.EXPECT().Enable(gomock.Any()).DoAndReturn(func(context.Context) error {
		cancel()
		return nil
	})

	cfg := models.ConnectorConfig{ConnectorType: models.ConnectorTypeNWC, ConnectorName: "Late"}
	require.NoError(t, s.Connect(ctx, cfg))

	got, persisted := storedConfig(t, storage)
	require.True(t, persisted)
	assert.Equal(t, cfg, got)
}

func TestStore_Disconnect_DuringConfigWrite(t *testing.T) {
	storage := &gatedStorage{
		MemoryKeyValueStorage: store.NewMemoryKeyValueStorage(),
		entered:               make(chan struct{}),
		release:               make(chan struct{}),
	}
	s, err := New(storage, slowDevRegistry(t, 0), logger.Nop())
	require.NoError(t, err)

	connectErr := make(chan error, 1)
	go func() { connectErr <- s.Connect(context.Background(), devConfig("Dev")) }()
	<-storage.entered
	require.True(t, s.Get().Connected)

	disconnectErr := make(chan error, 1)
	go func() { disconnectErr <- s.Disconnect(context.Background()) }()
	require.Eventually(t, func() bool { return !s.Get().Connected }, time.Second, time.Millisecond)

	close(storage.release)
	require.NoError(t, <-connectErr)
	require.NoError(t, <-disconnectErr)

	assert.Equal(t, models.StatusDisconnected, s.Get().Status())
	_, persisted := storedConfig(t, storage)
	assert.False(t, persisted)
}

func TestStore_Connect_StaleAttemptDoesNotPersist(t *testing.T) {
	storage := store.NewMemoryKeyValueStorage()
	s, err := New(storage, slowDevRegistry(t, 0), logger.Nop())
	require.NoError(t, err)

	s.mu.Lock()
	s.attempt = 7
	s.mu.Unlock()

	written, err := s.persistConfig(context.Background(), 6, devConfig("Stale"))
	require.NoError(t, err)
	assert.False(t, written)

	removed, err := s.removeConfig(context.Background(), 6)
	require.NoError(t, err)
	assert.False(t, removed)

	written, err = s.persistConfig(context.Background(), 7, devConfig("Current"))
	require.NoError(t, err)
	assert.True(t, written)
	got, persisted := storedConfig(t, storage)
	require.True(t, persisted)
	assert.Equal(t, "Current", got.ConnectorName)
}

func TestStore_Connect_LogsThroughContextLogger(t *testing.T) {
	s, _, _ := newTestStore(t)

	var buf bytes.Buffer
	ctxLog := &logger.Logger{Logger: zerolog.New(&buf).With().Str("component", "tui").Logger()}
	ctx := ctxLog.WithContext(context.Background())

	require.NoError(t, s.Connect(ctx, devConfig("Dev")))
	require.NoError(t, s.Disconnect(ctx))

	assert.Contains(t, buf.String(), `"component":"tui"`)
	assert.Contains(t, buf.String(), `"message":"connected"`)
}
