// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-art-vault/models"
)

// ContentService serves the storage node endpoints.
type ContentService interface {
	// Store saves an upload and returns its content-derived root.
	Store(ctx context.Context, req models.UploadRequest) (models.ContentID, error)

	// Keys lists every key under root, reserved keys included.
	Keys(ctx context.Context, root models.ContentID) ([]string, error)

	// Item returns the bytes stored at root/key.
	Item(ctx context.Context, root models.ContentID, key string) ([]byte, error)
}

// ContentServiceWrapper defines middleware composition for ContentService.
// Implementations wrap an existing ContentService to add behavior such as
// validating.
type ContentServiceWrapper interface {
	Wrap(ContentService) ContentService
}

// AppInfoService reports build metadata of the running node.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
