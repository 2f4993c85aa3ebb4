// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// Restore loads the persisted currency and, when a connector config was
// saved by an earlier successful connection, reconnects with it.
//
// A config that cannot be decoded is removed and ErrCorruptConfig is
// returned. Connection failures are returned as by Connect.
func (s *Store) Restore(ctx context.Context) error {
	currency, ok, err := s.storage.GetItem(ctx, KeyCurrency)
	if err != nil {
		return fmt.Errorf("read persisted currency: %w", err)
	}
	if ok {
		s.commit(func(st *State) bool {
			st.Currency = currency
			return true
		})
	}

	raw, ok, err := s.storage.GetItem(ctx, KeyConfig)
	if err != nil {
		return fmt.Errorf("read persisted connector config: %w", err)
	}
	if !ok {
		s.loggerFor(ctx).Debug().Str("func", "Store.Restore").Msg("no persisted connector config")
		return nil
	}

	cfg, err := decodeConnectorConfig(raw)
	if err != nil {
		s.loggerFor(ctx).Err(err).Str("func", "Store.Restore").Msg("dropping persisted connector config")
		if rmErr := s.storage.RemoveItem(ctx, KeyConfig); rmErr != nil {
			return errors.Join(err, fmt.Errorf("remove persisted connector config: %w", rmErr))
		}
		return err
	}

	return s.Connect(ctx, cfg)
}

func decodeConnectorConfig(raw string) (models.ConnectorConfig, error) {
	var cfg models.ConnectorConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		return models.ConnectorConfig{}, fmt.Errorf("%w: %w", ErrCorruptConfig, err)
	}
	if cfg.ConnectorType == "" {
		return models.ConnectorConfig{}, fmt.Errorf("%w: missing connector type", ErrCorruptConfig)
	}
	return cfg, nil
}
