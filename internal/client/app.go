// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/tui"
	"github.com/MKhiriev/go-art-vault/internal/workers"
)

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

// Closer releases the local storages of the client.
type Closer interface {
	Close() error
}

var _ Client = (*App)(nil)

// App runs the client: background workers for the whole session and the
// UI in the foreground.
type App struct {
	ui       UI
	workers  *workers.Workers
	storages Closer

	logger *logger.Logger
}

// NewApp assembles an [App] from already constructed parts.
func NewApp(ui UI, workers *workers.Workers, storages Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("no ui provided")
	}
	return &App{ui: ui, workers: workers, storages: storages, logger: logger}, nil
}

// Run implements [Client]. It returns nil when the user quits and cancels the
// session on SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defer a.closeStorages()

	if a.workers != nil {
		a.workers.Start(ctx)
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Msg("client stopped by user")
		return nil
	case errors.Is(err, context.Canceled):
		a.logger.Info().Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("ui: %w", err)
	}
}

func (a *App) closeStorages() {
	if a.storages == nil {
		return
	}
	if err := a.storages.Close(); err != nil {
		a.logger.Err(err).
			Str("func", "App.closeStorages").
			Msg("failed to close local storages")
	}
}
