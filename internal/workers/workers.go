// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the background workers of the client: the sweeper
// that drops expired name cache entries.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	sweeper := NewPeriodic("name-cache-sweeper", cfg.CacheSweepInterval, func(ctx context.Context) error {
		n, err := services.AddressService.PurgeExpired(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			logger.Debug().
				Str("func", "NewClientWorkers").
				Int64("purged", n).
				Msg("expired name cache entries purged")
		}
		return nil
	}, logger)

	return &Workers{workers: []Worker{sweeper}}
}

// Start starts every worker in order.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops every worker in reverse order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
