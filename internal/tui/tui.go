// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the vault client: the
// masonry gallery of one vault view, the modal that walks the user through
// securing and sharing it, and the navigation between vault roots.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/service"
	"github.com/MKhiriev/go-art-vault/internal/share"
	"github.com/MKhiriev/go-art-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned by [TUI.Run] when the user left the program.
var ErrUserQuit = errors.New("user quit")

// TUI runs the vault view.
type TUI struct {
	deps      appDeps
	appCfg    config.ClientApp
	buildInfo models.AppBuildInfo
	openRoot  models.ContentID

	logger *logger.Logger
}

// New validates the start vault of appCfg and returns a ready [TUI]. An
// empty appCfg.OpenVault starts with a fresh vault.
func New(services *service.ClientServices, storage adapter.StorageAdapter, wallet adapter.Wallet,
	appCfg config.ClientApp, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	var root models.ContentID
	if open := strings.TrimSpace(appCfg.OpenVault); open != "" {
		parsed, err := share.ParseLink(open)
		if err != nil {
			return nil, fmt.Errorf("invalid vault to open %q: %w", open, err)
		}
		root = parsed
	}

	return &TUI{
		deps:      appDeps{services: services, storage: storage, wallet: wallet},
		appCfg:    appCfg,
		buildInfo: buildInfo,
		openRoot:  root,
		logger:    logger,
	}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] on a regular
// exit.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.deps, t.appCfg, t.buildInfo, t.openRoot, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.workflow != nil {
		result.workflow.Unmount()
	}
	return ErrUserQuit
}
