// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

var (
	ErrNilStorage  = errors.New("state: storage is nil")
	ErrNilRegistry = errors.New("state: connector registry is nil")

	// ErrConnectSuperseded is returned by Connect when a newer Connect or a
	// Disconnect started before the attempt finished. The attempt leaves the
	// state untouched and unloads its own connector.
	ErrConnectSuperseded = errors.New("connect attempt superseded")

	// ErrBalanceUnsupported is returned by Balance when the active provider
	// cannot report a balance.
	ErrBalanceUnsupported = errors.New("balance is not supported by the connected wallet")

	// ErrCorruptConfig is returned by Restore when the persisted connector
	// config cannot be decoded. The stored value is removed.
	ErrCorruptConfig = errors.New("persisted connector config is corrupt")
)

// ConnectError describes a failed connection attempt.
//
// Its message is the message of Err, which is what State.Error holds. Kind
// classifies the failure for callers that need more than the text.
type ConnectError struct {
	Kind          models.ErrorKind
	ConnectorType models.ConnectorType
	Err           error
}

func (e *ConnectError) Error() string {
	return e.Err.Error()
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

func newConnectError(cfg models.ConnectorConfig, err error) *ConnectError {
	return &ConnectError{
		Kind:          errorKind(err),
		ConnectorType: cfg.ConnectorType,
		Err:           err,
	}
}

func errorKind(err error) models.ErrorKind {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.ErrorKindCanceled
	case errors.Is(err, connector.ErrUnknownConnectorType):
		return models.ErrorKindUnknownConnectorType
	case errors.Is(err, connector.ErrEnable):
		return models.ErrorKindEnable
	default:
		return models.ErrorKindConnectorInit
	}
}
