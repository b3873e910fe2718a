// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-art-vault/internal/vault"
)

// ClientUploadService secures staged items on the storage service.
type ClientUploadService interface {
	vault.Uploader
}

// ClientAddressService turns addresses into verified display names.
type ClientAddressService interface {
	// Resolve returns the verified name of address, or address itself when
	// no name can be verified. It never fails.
	Resolve(ctx context.Context, address string) string

	// PurgeExpired drops expired cache entries and returns how many were
	// removed.
	PurgeExpired(ctx context.Context) (int64, error)
}

// ClientWhitelistService keeps the per-address vault records.
type ClientWhitelistService interface {
	vault.RecordStore
}

// ClientListingService reads the remote content of a secured vault.
type ClientListingService interface {
	vault.Lister
}
