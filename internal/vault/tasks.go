// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-art-vault/models"
)

var errNoUploader = errors.New("no uploader configured")

// UploadTask is a pending upload handed out by [Workflow.ConfirmSecure]. It
// carries a snapshot of the staged items, so running it does not touch the
// workflow.
type UploadTask struct {
	ID      uint64
	Owner   string
	Items   []models.LocalItem
	Preview models.VaultItem

	uploader Uploader
}

// UploadResult is the outcome of an [UploadTask].
type UploadResult struct {
	ID   uint64
	Root models.ContentID
	Err  error
}

// Run performs the upload. It blocks and may be called from any goroutine.
func (t *UploadTask) Run(ctx context.Context) UploadResult {
	if t.uploader == nil {
		return UploadResult{ID: t.ID, Err: errNoUploader}
	}
	root, err := t.uploader.Secure(ctx, t.Owner, t.Items, t.Preview)
	return UploadResult{ID: t.ID, Root: root, Err: err}
}

// ListingTask is a pending fetch of the remote listing of a secured root.
type ListingTask struct {
	ID   uint64
	Root models.ContentID

	lister Lister
}

// ListingResult is the outcome of a [ListingTask].
type ListingResult struct {
	ID      uint64
	Root    models.ContentID
	Listing models.VaultListing
	Err     error
}

// Run fetches the listing. It blocks and may be called from any goroutine.
func (t *ListingTask) Run(ctx context.Context) ListingResult {
	listing, err := t.lister.Load(ctx, t.Root)
	return ListingResult{ID: t.ID, Root: t.Root, Listing: listing, Err: err}
}
