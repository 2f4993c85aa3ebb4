// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// Store is the part of the state store the runtime needs at startup.
type Store interface {
	SetBitcoinConnectConfig(partial models.BitcoinConnectConfig) error
	Restore(ctx context.Context) error
	Balance(ctx context.Context) (models.Balance, error)
}

// UI is the interactive front end.
type UI interface {
	Run(ctx context.Context) error
	OnBalance(balance models.Balance, err error)
}
