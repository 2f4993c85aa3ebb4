// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-bitcoin-connect/internal/logger"
	"github.com/MKhiriev/go-bitcoin-connect/models"
)

const defaultBalanceRefresh = 30 * time.Second

// BalanceSink receives every refresh result.
type BalanceSink func(balance models.Balance, err error)

// BalanceRefresher polls a BalanceSource on a ticker and hands the results
// to a sink. It is idle until Start is called.
type BalanceRefresher struct {
	source   BalanceSource
	sink     BalanceSink
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBalanceRefresher creates a refresher polling source every interval. If
// interval is zero or negative it defaults to 30 seconds.
func NewBalanceRefresher(source BalanceSource, interval time.Duration, sink BalanceSink, log *logger.Logger) *BalanceRefresher {
	if interval <= 0 {
		interval = defaultBalanceRefresh
	}
	if log == nil {
		log = logger.Nop()
	}
	return &BalanceRefresher{
		source:   source,
		sink:     sink,
		interval: interval,
		log:      log,
	}
}

// Start stops any previously running loop, then launches a goroutine that
// refreshes the balance every interval. The goroutine exits when ctx is
// cancelled or Stop is called.
func (r *BalanceRefresher) Start(ctx context.Context) {
	r.Stop()

	r.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.wg.Add(1)
	r.mu.Unlock()

	go func() {
		defer r.wg.Done()
		t := time.NewTicker(r.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				r.refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the refresh loop and blocks until it has fully exited.
func (r *BalanceRefresher) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

func (r *BalanceRefresher) refresh(ctx context.Context) {
	balance, err := r.source.Balance(ctx)
	if ctx.Err() != nil {
		return
	}
	if err != nil {
		r.log.Debug().Err(err).Str("func", "BalanceRefresher.refresh").Msg("balance refresh failed")
	}
	if r.sink != nil {
		r.sink(balance, err)
	}
}
