// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/models"
)

type clientUploadService struct {
	storage adapter.StorageAdapter

	logger *logger.Logger
}

// NewClientUploadService returns the upload pipeline backed by storage.
func NewClientUploadService(storage adapter.StorageAdapter, logger *logger.Logger) ClientUploadService {
	return &clientUploadService{storage: storage, logger: logger}
}

// Secure implements [vault.Uploader]. It sends one request per call and
// never retries.
func (u *clientUploadService) Secure(ctx context.Context, owner string, items []models.LocalItem, preview models.VaultItem) (models.ContentID, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, ErrNoItems)
	}

	previewKey, err := previewKeyOf(items, preview)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, err)
	}

	root, err := u.storage.Upload(ctx, models.UploadRequest{
		Owner:      owner,
		PreviewKey: previewKey,
		Files:      items,
	})
	if err != nil {
		u.logger.Err(err).
			Str("func", "clientUploadService.Secure").
			Int("items", len(items)).
			Msg("storage rejected upload")
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, mapAdapterError(err))
	}
	if root.IsZero() {
		return "", fmt.Errorf("%w: %w", ErrUploadFailed, ErrNoContentID)
	}

	u.logger.Info().
		Str("func", "clientUploadService.Secure").
		Str("root", root.String()).
		Int("items", len(items)).
		Msg("vault secured")

	return root, nil
}

// previewKeyOf returns the key sent as the preview field. No preview and the
// placeholder both map to [models.PlaceholderKey].
func previewKeyOf(items []models.LocalItem, preview models.VaultItem) (string, error) {
	if preview == nil || models.IsPlaceholder(preview) {
		return models.PlaceholderKey, nil
	}

	key := preview.Key()
	for _, it := range items {
		if it.Name == key {
			return key, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPreview, key)
}
