package connector

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// Factory builds a connector for the given config. It must not perform any
// blocking work; that belongs in [Connector.Init].
type Factory func(cfg models.ConnectorConfig) (Connector, error)

// Registry maps connector type discriminators to factories.
// The zero value is not usable, create one with NewRegistry.
type Registry struct {
	mu        sync.RWMutex
	factories map[models.ConnectorType]Factory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[models.ConnectorType]Factory)}
}

// Register binds factory to connectorType, replacing any previous binding.
func (r *Registry) Register(connectorType models.ConnectorType, factory Factory) error {
	if connectorType == "" {
		return ErrEmptyConnectorType
	}
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, connectorType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[connectorType] = factory
	return nil
}

// Resolve returns the factory bound to connectorType or an error wrapping
// ErrUnknownConnectorType.
func (r *Registry) Resolve(connectorType models.ConnectorType) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[connectorType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConnectorType, connectorType)
	}
	return factory, nil
}

// New resolves the factory for cfg.ConnectorType and constructs the
// connector. Construction failures wrap ErrConnectorInit.
func (r *Registry) New(cfg models.ConnectorConfig) (Connector, error) {
	factory, err := r.Resolve(cfg.ConnectorType)
	if err != nil {
		return nil, err
	}

	conn, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectorInit, err)
	}
	if conn == nil {
		return nil, fmt.Errorf("%w: factory for %q returned nil", ErrConnectorInit, cfg.ConnectorType)
	}
	return conn, nil
}

// Types returns the registered discriminators in sorted order.
func (r *Registry) Types() []models.ConnectorType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]models.ConnectorType, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}
