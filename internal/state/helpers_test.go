package state

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/mock"
	"github.com/MKhiriev/go-bitcoin-connect/internal/store"
	"github.com/MKhiriev/go-bitcoin-connect/models"
	"github.com/stretchr/testify/require"
)

// walletProvider is a provider exposing every optional capability.
type walletProvider struct {
	*mock.MockProvider
	*mock.MockInfoProvider
	*mock.MockBalanceProvider
}

// infoOnlyProvider advertises info but cannot report a balance.
type infoOnlyProvider struct {
	*mock.MockProvider
	*mock.MockInfoProvider
}

func newTestStore(t *testing.T, opts ...Option) (*Store, *connector.Registry, *store.MemoryKeyValueStorage) {
	t.Helper()
	storage := store.NewMemoryKeyValueStorage()
	registry := connector.NewRegistry()
	require.NoError(t, registry.Register(models.ConnectorTypeDev, connector.DevFactory(0)))

	s, err := New(storage, registry, logger.Nop(), opts...)
	require.NoError(t, err)
	return s, registry, storage
}

func register(t *testing.T, registry *connector.Registry, connectorType models.ConnectorType, conn connector.Connector) {
	t.Helper()
	require.NoError(t, registry.Register(connectorType, func(models.ConnectorConfig) (connector.Connector, error) {
		return conn, nil
	}))
}

func devConfig(name string) models.ConnectorConfig {
	return models.ConnectorConfig{ConnectorType: models.ConnectorTypeDev, ConnectorName: name}
}

func slowDevRegistry(t *testing.T, latency time.Duration) *connector.Registry {
	t.Helper()
	registry := connector.NewRegistry()
	require.NoError(t, registry.Register(models.ConnectorTypeDev, connector.DevFactory(latency)))
	return registry
}
