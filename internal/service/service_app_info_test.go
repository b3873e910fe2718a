// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ReturnsAppInfoServiceInterface(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("2.5.1", "", ""), logger.Nop())

	require.NotNil(t, svc)
	var _ AppInfoService = svc
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsBuildVersion(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("3.1.4", "2026-01-01", "abc"), logger.Nop())

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_EmptyVersionIsNA(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Equal(t, "N/A", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1 := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	svc2 := NewAppInfoService(models.NewAppBuildInfo("2.0.0", "", ""), logger.Nop())

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}
