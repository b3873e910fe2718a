// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer clients the vault client uses
// to reach its external collaborators: the content storage service, the
// name-resolution service and the wallet.
//
// The HTTP implementations are built on resty. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-art-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// StorageAdapter talks to the content storage service.
type StorageAdapter interface {
	// Upload sends the multipart upload of req to POST / and returns the root
	// carried by the Ipfs-Hash response header. A response without the header
	// yields an empty root and a nil error; deciding what that means is left
	// to the caller.
	Upload(ctx context.Context, req models.UploadRequest) (models.ContentID, error)

	// List returns every key stored under root, reserved keys included.
	List(ctx context.Context, root models.ContentID) ([]string, error)

	// Fetch returns the raw bytes stored at {root}/{key}.
	Fetch(ctx context.Context, root models.ContentID, key string) ([]byte, error)

	// ItemURL returns the absolute URL an item is served at.
	ItemURL(root models.ContentID, key string) string
}

// NameServiceAdapter performs single name-service lookups without caching.
type NameServiceAdapter interface {
	// Reverse returns the name recorded for address. [ErrNotFound] means the
	// address has no reverse record.
	Reverse(ctx context.Context, address string) (string, error)

	// Resolve returns the address a name points to.
	Resolve(ctx context.Context, name string) (string, error)
}

// Wallet connects the user's account.
type Wallet interface {
	// Connect returns the connected account or [ErrWalletUnavailable].
	Connect(ctx context.Context) (models.Account, error)
}
