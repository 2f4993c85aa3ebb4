package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/internal/client"
	"github.com/MKhiriev/go-bitcoin-connect/internal/config"
	"github.com/MKhiriev/go-bitcoin-connect/internal/connector"
	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/internal/state"
	"github.com/MKhiriev/go-bitcoin-connect/internal/store"
	"github.com/MKhiriev/go-bitcoin-connect/internal/tui"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// devConnectorLatency makes the dev wallet handshake visible in the UI.
const devConnectorLatency = 800 * time.Millisecond

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("bitcoin-connect-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bitcoin-connect-client", cfg.Log.File, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	registry := connector.NewRegistry()
	if err = registry.Register(models.ConnectorTypeDev, connector.DevFactory(devConnectorLatency)); err != nil {
		log.Fatal().Err(err).Msg("register connectors")
	}

	st, err := state.New(storages.KeyValue, registry, log, state.WithConnectTimeout(cfg.Connect.Timeout))
	if err != nil {
		log.Fatal().Err(err).Msg("create state store")
	}

	ui, err := tui.New(st, registry.Types(), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(st, ui, cfg.Widget, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		_ = storages.Close()
		os.Exit(1)
	}
}
