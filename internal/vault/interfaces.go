// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vault implements the vault workflow: the staged item collection and
// the state machine that sequences preview selection, securing, sharing and
// access management of a single mounted vault view.
//
// A [Workflow] is not safe for concurrent use. All user actions and async
// completions must be delivered from one goroutine (the UI event loop).
// Blocking work is handed back to the caller as tasks ([UploadTask],
// [ListingTask]) that may run anywhere; their results are applied with
// [Workflow.HandleUploadResult] and [Workflow.HandleListing].
package vault

import (
	"context"

	"github.com/MKhiriev/go-art-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Uploader secures staged items and returns the new vault root.
type Uploader interface {
	Secure(ctx context.Context, owner string, items []models.LocalItem, preview models.VaultItem) (models.ContentID, error)
}

// RecordStore persists the per-address vault record.
type RecordStore interface {
	// Load returns the record of address. found is false when none exists.
	Load(ctx context.Context, address string) (record models.UserVaultRecord, found bool, err error)
	Save(ctx context.Context, record models.UserVaultRecord) error
}

// Lister fetches the remote listing of a secured root.
type Lister interface {
	Load(ctx context.Context, root models.ContentID) (models.VaultListing, error)
}

// Navigator moves the application to another view path.
type Navigator interface {
	Navigate(path string)
}
