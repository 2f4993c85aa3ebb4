package tui

import (
	"context"

	"github.com/MKhiriev/go-bitcoin-connect/internal/state"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// Store is the part of [state.Store] the terminal UI drives.
type Store interface {
	Get() state.State
	Subscribe(fn state.Listener) (unsubscribe func())

	Connect(ctx context.Context, cfg models.ConnectorConfig) error
	Disconnect(ctx context.Context) error
	Balance(ctx context.Context) (models.Balance, error)

	PushRoute(route models.Route)
	PopRoute() models.Route
	SetModalOpen(open bool)
	SetError(msg string)
}
