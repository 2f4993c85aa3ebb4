package connector

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/models"
)

// ErrConnectorUnloaded is returned by the dev provider once its connector has
// been unloaded.
var ErrConnectorUnloaded = errors.New("connector unloaded")

// devBalanceSats is the fixed balance reported by the dev provider.
const devBalanceSats = 21_000

// DevFactory returns a factory for an in-process connector that needs no
// wallet. Init waits for latency (or ctx) to mimic a remote handshake.
func DevFactory(latency time.Duration) Factory {
	return func(cfg models.ConnectorConfig) (Connector, error) {
		return &devConnector{cfg: cfg, latency: latency}, nil
	}
}

type devConnector struct {
	cfg     models.ConnectorConfig
	latency time.Duration

	mu       sync.Mutex
	unloaded bool
}

func (c *devConnector) Init(ctx context.Context) (Provider, error) {
	if c.latency > 0 {
		t := time.NewTimer(c.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}

	return &devProvider{conn: c}, nil
}

func (c *devConnector) Unload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unloaded = true
	return nil
}

func (c *devConnector) isUnloaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unloaded
}

type devProvider struct {
	conn *devConnector
}

func (p *devProvider) Enable(ctx context.Context) error {
	if p.conn.isUnloaded() {
		return ErrConnectorUnloaded
	}
	return ctx.Err()
}

func (p *devProvider) GetInfo(_ context.Context) (models.WalletInfo, error) {
	if p.conn.isUnloaded() {
		return models.WalletInfo{}, ErrConnectorUnloaded
	}

	alias := p.conn.cfg.ConnectorName
	if alias == "" {
		alias = "dev"
	}
	return models.WalletInfo{
		Node:    models.NodeInfo{Alias: alias},
		Methods: []string{"getInfo", models.MethodGetBalance},
		Version: "dev",
	}, nil
}

func (p *devProvider) GetBalance(_ context.Context) (models.Balance, error) {
	if p.conn.isUnloaded() {
		return models.Balance{}, ErrConnectorUnloaded
	}
	return models.Balance{Amount: devBalanceSats, Currency: "sats"}, nil
}
