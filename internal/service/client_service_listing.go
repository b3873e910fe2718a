// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/models"
)

type clientListingService struct {
	storage adapter.StorageAdapter

	logger *logger.Logger
}

// NewClientListingService returns the remote listing reader.
func NewClientListingService(storage adapter.StorageAdapter, logger *logger.Logger) ClientListingService {
	return &clientListingService{storage: storage, logger: logger}
}

// Load implements [vault.Lister]. Reserved keys are dropped from the key
// list; their records are read into Owner and PreviewKey when present.
func (l *clientListingService) Load(ctx context.Context, root models.ContentID) (models.VaultListing, error) {
	if root.IsZero() {
		return models.VaultListing{}, fmt.Errorf("load listing: %w", ErrContentNotFound)
	}

	keys, err := l.storage.List(ctx, root)
	if err != nil {
		return models.VaultListing{}, fmt.Errorf("list %s: %w", root, mapAdapterError(err))
	}

	listing := models.VaultListing{Root: root}
	for _, k := range keys {
		if !models.IsReservedKey(k) && !slices.Contains(listing.Keys, k) {
			listing.Keys = append(listing.Keys, k)
		}
	}

	if slices.Contains(keys, models.ReservedOwnerKey) {
		listing.Owner = l.record(ctx, root, models.ReservedOwnerKey)
	}
	if slices.Contains(keys, models.ReservedPreviewKey) {
		listing.PreviewKey = l.record(ctx, root, models.ReservedPreviewKey)
	}

	return listing, nil
}

// record reads a small text record. Failures are logged and read as empty so
// that the files stay viewable.
func (l *clientListingService) record(ctx context.Context, root models.ContentID, key string) string {
	b, err := l.storage.Fetch(ctx, root, key)
	if err != nil {
		ev := l.logger.Warn()
		if errors.Is(err, adapter.ErrNotFound) {
			ev = l.logger.Debug()
		}
		ev.Err(err).
			Str("func", "clientListingService.record").
			Str("root", root.String()).
			Str("key", key).
			Msg("failed to read vault record")
		return ""
	}
	return strings.TrimSpace(string(b))
}
