package state

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// SetBitcoinConnectConfig merges partial over the default widget config and
// commits the result. Earlier calls have no effect on the outcome.
func (s *Store) SetBitcoinConnectConfig(partial models.BitcoinConnectConfig) error {
	merged, err := models.MergeBitcoinConnectConfig(partial)
	if err != nil {
		s.log.Err(err).Str("func", "Store.SetBitcoinConnectConfig").Msg("failed to merge widget config")
		return err
	}

	s.commit(func(st *State) bool {
		st.BitcoinConnectConfig = merged
		return true
	})
	return nil
}

// SetCurrency stores currency under KeyCurrency, or removes the key when
// currency is empty, and then commits it.
func (s *Store) SetCurrency(ctx context.Context, currency string) error {
	var err error
	if currency == "" {
		err = s.storage.RemoveItem(ctx, KeyCurrency)
	} else {
		err = s.storage.SetItem(ctx, KeyCurrency, currency)
	}
	if err != nil {
		s.loggerFor(ctx).Err(err).Str("func", "Store.SetCurrency").Msg("failed to persist currency")
		return fmt.Errorf("persist currency: %w", err)
	}

	s.commit(func(st *State) bool {
		st.Currency = currency
		return true
	})
	return nil
}

// SetError records an error produced outside of Connect. An empty message
// clears the error.
func (s *Store) SetError(msg string) {
	s.commit(func(st *State) bool {
		st.Error = msg
		st.ErrorKind = models.ErrorKindNone
		if msg != "" {
			st.ErrorKind = models.ErrorKindExternal
		}
		return true
	})
}

func (s *Store) SetModalOpen(open bool) {
	s.commit(func(st *State) bool {
		st.ModalOpen = open
		return true
	})
}
