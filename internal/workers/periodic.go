// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-art-vault/internal/logger"
)

// DefaultInterval is used when a [Periodic] is created without a positive
// interval.
const DefaultInterval = 5 * time.Minute

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

type periodic struct {
	name     string
	interval time.Duration
	task     Task

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPeriodic creates a worker that calls task every interval. The worker is
// idle until Start is called. Task errors are logged and do not stop the
// worker.
func NewPeriodic(name string, interval time.Duration, task Task, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &periodic{name: name, interval: interval, task: task, logger: logger}
}

// Start implements [Worker]. It stops any previously running loop first.
func (p *periodic) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := p.task(jobCtx); err != nil {
					p.logger.Err(err).
						Str("func", "periodic.Start").
						Str("worker", p.name).
						Msg("periodic task failed")
				}
			}
		}
	}()
}

// Stop implements [Worker].
func (p *periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
