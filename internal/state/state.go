// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"slices"

	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// State is a snapshot of the widget state.
//
// Snapshots returned by the Store are copies: slices and pointed-to configs
// may be modified by the caller without affecting the Store. Connector and
// Provider are shared handles and must not be unloaded by the caller.
type State struct {
	// Connection.
	Connected          bool
	Connecting         bool
	Connector          connector.Connector
	Provider           connector.Provider
	ConnectorConfig    *models.ConnectorConfig
	ConnectorName      string
	Info               *models.WalletInfo
	SupportsGetBalance bool
	Error              string
	ErrorKind          models.ErrorKind

	// Navigation.
	Route        models.Route
	RouteHistory []models.Route

	// Widget.
	ModalOpen            bool
	Currency             string
	BitcoinConnectConfig models.BitcoinConnectConfig
}

func initialState() State {
	return State{
		Route:                models.RouteStart,
		BitcoinConnectConfig: models.DefaultBitcoinConnectConfig(),
	}
}

// Status derives the lifecycle phase from the connection flags.
func (s State) Status() models.Status {
	return models.ResolveStatus(s.Connected, s.Connecting, s.Error)
}

func (s State) clone() State {
	c := s
	c.RouteHistory = slices.Clone(s.RouteHistory)
	if s.ConnectorConfig != nil {
		cfg := *s.ConnectorConfig
		c.ConnectorConfig = &cfg
	}
	c.Info = s.Info.Clone()
	c.BitcoinConnectConfig = s.BitcoinConnectConfig.Clone()
	return c
}

// clearConnection drops every per-connection field. Error is left alone.
func (s *State) clearConnection() {
	s.Connected = false
	s.Connecting = false
	s.Connector = nil
	s.Provider = nil
	s.ConnectorConfig = nil
	s.ConnectorName = ""
	s.Info = nil
	s.SupportsGetBalance = false
}
