package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bitcoin-connect/internal/config"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/workers"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

var (
	ErrNilStore = errors.New("client: store is nil")
	ErrNilUI    = errors.New("client: ui is nil")
)

type App struct {
	store   Store
	ui      UI
	widget  models.BitcoinConnectConfig
	workers *workers.Workers
	log     *logger.Logger
}

func NewApp(store Store, ui UI, widget models.BitcoinConnectConfig, workersCfg config.ClientWorkers, log *logger.Logger) (*App, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if ui == nil {
		return nil, ErrNilUI
	}
	if log == nil {
		log = logger.Nop()
	}

	refresher := workers.NewBalanceRefresher(store, workersCfg.BalanceRefresh, ui.OnBalance, log)

	return &App{
		store:   store,
		ui:      ui,
		widget:  widget,
		workers: workers.NewWorkers(refresher),
		log:     log,
	}, nil
}

// Run applies the widget config, restores the previous connection and runs
// the UI. A failed restore is logged and shown by the UI, it does not stop
// the client.
func (a *App) Run(ctx context.Context) error {
	if err := a.store.SetBitcoinConnectConfig(a.widget); err != nil {
		return fmt.Errorf("apply widget config: %w", err)
	}

	if err := a.store.Restore(ctx); err != nil {
		a.log.Warn().Err(err).Str("func", "App.Run").Msg("failed to restore previous connection")
	}

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}
