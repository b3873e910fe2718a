// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/app"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/mock"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testRoot = models.ContentID("bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku")

func newTestUploadSvc(t *testing.T) (ClientUploadService, *mock.MockStorageAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	storage := mock.NewMockStorageAdapter(ctrl)
	return NewClientUploadService(storage, logger.Nop()), storage
}

func stagedItems() []models.LocalItem {
	return []models.LocalItem{
		{Name: "a.png", Blob: models.BytesBlob("a")},
		{Name: "b.png", Blob: models.BytesBlob("b")},
	}
}

// ── Secure ───────────────────────────────────────────────────────────────────

func TestClientUploadService_Secure_Success(t *testing.T) {
	svc, storage := newTestUploadSvc(t)
	ctx := context.Background()
	items := stagedItems()

	storage.EXPECT().Upload(ctx, models.UploadRequest{
		Owner:      "0xowner",
		PreviewKey: "b.png",
		Files:      items,
	}).Return(testRoot, nil)

	root, err := svc.Secure(ctx, "0xowner", items, items[1])

	require.NoError(t, err)
	assert.Equal(t, testRoot, root)
}

func TestClientUploadService_Secure_NoPreviewSendsPlaceholder(t *testing.T) {
	for name, preview := range map[string]models.VaultItem{
		"nil":         nil,
		"placeholder": models.PlaceholderItem{},
	} {
		t.Run(name, func(t *testing.T) {
			svc, storage := newTestUploadSvc(t)

			storage.EXPECT().Upload(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req models.UploadRequest) (models.ContentID, error) {
					assert.Equal(t, models.PlaceholderKey, req.PreviewKey)
					return testRoot, nil
				})

			_, err := svc.Secure(context.Background(), "0xowner", stagedItems(), preview)
			require.NoError(t, err)
		})
	}
}

func TestClientUploadService_Secure_NoItems(t *testing.T) {
	svc, _ := newTestUploadSvc(t)

	_, err := svc.Secure(context.Background(), "0xowner", nil, nil)

	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestClientUploadService_Secure_ForeignPreview(t *testing.T) {
	svc, _ := newTestUploadSvc(t)

	_, err := svc.Secure(context.Background(), "0xowner", stagedItems(), models.RemoteItem{Root: testRoot, ItemKey: "c.png"})

	assert.ErrorIs(t, err, ErrInvalidPreview)
}

func TestClientUploadService_Secure_MissingContentID(t *testing.T) {
	svc, storage := newTestUploadSvc(t)

	storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.ContentID(""), nil)

	root, err := svc.Secure(context.Background(), "0xowner", stagedItems(), nil)

	assert.True(t, root.IsZero())
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorIs(t, err, ErrNoContentID)
}

func TestClientUploadService_Secure_StorageError(t *testing.T) {
	svc, storage := newTestUploadSvc(t)

	storage.EXPECT().Upload(gomock.Any(), gomock.Any()).
		Return(models.ContentID(""), fmt.Errorf("%w: %s", adapter.ErrBadRequest, app.MsgNoOwnerProvided))

	_, err := svc.Secure(context.Background(), "", stagedItems(), nil)

	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorIs(t, err, ErrNoOwnerProvided)
}

func TestClientUploadService_Secure_TransportError(t *testing.T) {
	svc, storage := newTestUploadSvc(t)

	storage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(models.ContentID(""), assert.AnError)

	_, err := svc.Secure(context.Background(), "0xowner", stagedItems(), nil)

	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.ErrorIs(t, err, assert.AnError)
}
