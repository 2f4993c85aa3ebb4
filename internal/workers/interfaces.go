// Package workers provides abstractions for managing and running
// background workers in the client.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker and returns immediately; the worker keeps
// running until ctx is cancelled or Stop is called. Stop blocks until the
// worker has exited and is safe to call on a worker that is not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// BalanceSource reports the balance of the connected wallet.
type BalanceSource interface {
	Balance(ctx context.Context) (models.Balance, error)
}
