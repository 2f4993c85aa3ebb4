// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package connector

import (
	"context"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/connector_mock.go -package=mock

// Connector establishes a connection to one wallet backend.
type Connector interface {
	// Init prepares the backend and returns the provider handle. It may
	// block for as long as the backend needs (extension prompt, remote
	// handshake); implementations must honour ctx cancellation.
	Init(ctx context.Context) (Provider, error)

	// Unload releases every resource held by the connector. It is called
	// at most once per successful or failed connection attempt and must be
	// safe to call after a failed Init.
	Unload() error
}

// Provider is the capability handle returned by [Connector.Init].
type Provider interface {
	// Enable asks the wallet to authorize this application.
	Enable(ctx context.Context) error
}

// InfoProvider is implemented by providers that can describe themselves.
type InfoProvider interface {
	GetInfo(ctx context.Context) (models.WalletInfo, error)
}

// BalanceProvider is implemented by providers that can report a balance.
type BalanceProvider interface {
	GetBalance(ctx context.Context) (models.Balance, error)
}
