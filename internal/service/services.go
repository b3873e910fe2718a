// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/store"
	"github.com/MKhiriev/go-art-vault/models"
)

type Services struct {
	ContentService ContentService
	AppInfoService AppInfoService
}

func NewServices(storages *store.NodeStorages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	content := NewContentValidationService().Wrap(NewContentService(storages.Content, logger))

	return &Services{
		ContentService: content,
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
