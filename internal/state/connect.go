// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Connect establishes a connection described by cfg.
//
// The attempt commits Connecting first, then resolves, initialises and
// enables the connector without holding the lock. Provider info is fetched
// on a best-effort basis. On success the connected state is committed in one
// step, the route is reset to start, the previously active connector (if
// any) is unloaded and cfg is persisted under KeyConfig.
//
// On failure the error and a full teardown are committed together, every
// connector involved is unloaded and KeyConfig is removed. The returned
// error is a *ConnectError wrapping one of the connector sentinels.
//
// If a newer Connect or a Disconnect started meanwhile, the attempt unloads
// its own connector and returns ErrConnectSuperseded without touching the
// state.
func (s *Store) Connect(ctx context.Context, cfg models.ConnectorConfig) error {
	log := s.loggerFor(ctx).With().
		Str("attempt_id", uuid.NewString()).
		Str("connector_type", cfg.ConnectorType.String()).
		Logger()

	var attempt uint64
	s.commit(func(st *State) bool {
		s.attempt++
		attempt = s.attempt

		st.Connecting = true
		st.Connected = false
		st.Provider = nil
		st.Info = nil
		st.SupportsGetBalance = false
		st.Error = ""
		st.ErrorKind = models.ErrorKindNone
		return true
	})
	log.Debug().Str("func", "Store.Connect").Msg("connect attempt started")

	if s.connectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.connectTimeout)
		defer cancel()
	}

	conn, provider, err := s.open(ctx, cfg)
	if err != nil {
		return s.failConnect(ctx, &log, attempt, cfg, conn, err)
	}

	result := connector.FetchInfo(ctx, provider)
	switch result.Status {
	case connector.InfoFailed:
		log.Warn().Err(result.Err).Str("func", "Store.Connect").Msg("provider info unavailable")
	case connector.InfoUnsupported:
		log.Debug().Str("func", "Store.Connect").Msg("provider does not expose info")
	}
	supportsGetBalance := connector.SupportsGetBalance(result.Info, provider)

	var previous connector.Connector
	committed := s.commit(func(st *State) bool {
		if attempt != s.attempt {
			return false
		}
		previous = st.Connector

		connectorConfig := cfg
		st.Connected = true
		st.Connecting = false
		st.Connector = conn
		st.Provider = provider
		st.ConnectorConfig = &connectorConfig
		st.ConnectorName = cfg.ConnectorName
		st.Info = result.Info.Clone()
		st.SupportsGetBalance = supportsGetBalance
		st.resetRoute()
		return true
	})
	if !committed {
		s.unload(&log, conn)
		log.Info().Str("func", "Store.Connect").Msg("connect attempt superseded")
		return ErrConnectSuperseded
	}

	if previous != nil {
		s.unload(&log, previous)
	}

	persisted, err := s.persistConfig(ctx, attempt, cfg)
	switch {
	case err != nil:
		log.Err(err).Str("func", "Store.Connect").Msg("failed to persist connector config")
	case !persisted:
		log.Debug().Str("func", "Store.Connect").Msg("connector config not persisted, attempt superseded")
	}

	log.Info().
		Str("func", "Store.Connect").
		Str("connector_name", cfg.ConnectorName).
		Str("info", result.Status.String()).
		Bool("supports_get_balance", supportsGetBalance).
		Msg("connected")
	return nil
}

// open runs the blocking part of a connect attempt. The returned connector is
// non-nil whenever it was constructed, even on error, so it can be unloaded.
func (s *Store) open(ctx context.Context, cfg models.ConnectorConfig) (connector.Connector, connector.Provider, error) {
	conn, err := s.registry.New(cfg)
	if err != nil {
		return nil, nil, err
	}

	provider, err := conn.Init(ctx)
	if err != nil {
		return conn, nil, fmt.Errorf("%w: %w", connector.ErrConnectorInit, err)
	}
	if provider == nil {
		return conn, nil, fmt.Errorf("%w: connector returned no provider", connector.ErrConnectorInit)
	}

	if err = provider.Enable(ctx); err != nil {
		return conn, nil, fmt.Errorf("%w: %w", connector.ErrEnable, err)
	}

	return conn, provider, nil
}

func (s *Store) failConnect(ctx context.Context, log *zerolog.Logger, attempt uint64, cfg models.ConnectorConfig, conn connector.Connector, cause error) error {
	connErr := newConnectError(cfg, cause)

	var stale connector.Connector
	committed := s.commit(func(st *State) bool {
		if attempt != s.attempt {
			return false
		}
		stale = st.Connector

		st.clearConnection()
		st.Error = connErr.Error()
		st.ErrorKind = connErr.Kind
		st.ModalOpen = false
		st.resetRoute()
		return true
	})

	if conn != nil {
		s.unload(log, conn)
	}
	if !committed {
		log.Info().Err(cause).Str("func", "Store.Connect").Msg("superseded connect attempt failed")
		return ErrConnectSuperseded
	}
	if stale != nil {
		s.unload(log, stale)
	}

	if _, err := s.removeConfig(ctx, attempt); err != nil {
		log.Err(err).Str("func", "Store.Connect").Msg("failed to remove persisted connector config")
	}

	log.Error().
		Err(cause).
		Str("func", "Store.Connect").
		Str("kind", string(connErr.Kind)).
		Msg("connect failed")
	return connErr
}

// Disconnect unloads the active connector, clears every connection field,
// closes the modal, resets navigation and removes the persisted config. The
// last error message is kept. Calling it when already disconnected is safe.
//
// Only a failure to remove the persisted config is returned.
func (s *Store) Disconnect(ctx context.Context) error {
	var (
		conn    connector.Connector
		attempt uint64
	)
	s.commit(func(st *State) bool {
		// any in-flight attempt is now stale
		s.attempt++
		attempt = s.attempt
		conn = st.Connector

		st.clearConnection()
		st.ModalOpen = false
		st.resetRoute()
		return true
	})

	log := s.loggerFor(ctx).Logger
	if conn != nil {
		s.unload(&log, conn)
	}

	if _, err := s.removeConfig(ctx, attempt); err != nil {
		log.Err(err).Str("func", "Store.Disconnect").Msg("failed to remove persisted connector config")
		return fmt.Errorf("remove persisted connector config: %w", err)
	}

	log.Debug().Str("func", "Store.Disconnect").Msg("disconnected")
	return nil
}

// Balance asks the connected provider for its balance.
func (s *Store) Balance(ctx context.Context) (models.Balance, error) {
	s.mu.Lock()
	provider, supported := s.state.Provider, s.state.SupportsGetBalance
	s.mu.Unlock()

	if !supported {
		return models.Balance{}, ErrBalanceUnsupported
	}
	balanceProvider, ok := provider.(connector.BalanceProvider)
	if !ok {
		return models.Balance{}, ErrBalanceUnsupported
	}

	balance, err := balanceProvider.GetBalance(ctx)
	if err != nil {
		s.loggerFor(ctx).Err(err).Str("func", "Store.Balance").Msg("failed to get balance")
		return models.Balance{}, fmt.Errorf("get balance: %w", err)
	}
	return balance, nil
}

func (s *Store) unload(log *zerolog.Logger, conn connector.Connector) {
	if err := conn.Unload(); err != nil {
		log.Warn().Err(err).Str("func", "Store.unload").Msg("failed to unload connector")
	}
}

// loggerFor prefers the logger carried by ctx over the Store's own.
func (s *Store) loggerFor(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.log
}

func (s *Store) isCurrent(attempt uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return attempt == s.attempt
}

// persistConfig stores cfg under KeyConfig while attempt is still the
// latest connect or disconnect. It reports whether the write happened.
func (s *Store) persistConfig(ctx context.Context, attempt uint64, cfg models.ConnectorConfig) (bool, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return false, fmt.Errorf("encode connector config: %w", err)
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if !s.isCurrent(attempt) {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err = s.storage.SetItem(ctx, KeyConfig, string(data)); err != nil {
		return false, fmt.Errorf("store connector config: %w", err)
	}
	return true, nil
}

// removeConfig drops KeyConfig unless a newer attempt owns it by now.
func (s *Store) removeConfig(ctx context.Context, attempt uint64) (bool, error) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()
	if !s.isCurrent(attempt) {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := s.storage.RemoveItem(ctx, KeyConfig); err != nil {
		return false, err
	}
	return true, nil
}
