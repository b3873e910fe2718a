// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/store"
	"github.com/MKhiriev/go-art-vault/models"
)

type contentService struct {
	content store.ContentStore

	logger *logger.Logger
}

func NewContentService(content store.ContentStore, logger *logger.Logger) ContentService {
	return &contentService{content: content, logger: logger}
}

func (c *contentService) Store(ctx context.Context, req models.UploadRequest) (models.ContentID, error) {
	files := make([]store.File, 0, len(req.Files))
	for _, item := range req.Files {
		data, err := readBlob(item.Blob)
		if err != nil {
			return "", fmt.Errorf("read %q: %w", item.Name, err)
		}
		files = append(files, store.File{Name: item.Name, Data: data})
	}

	root, err := c.content.Put(ctx, req.Owner, req.PreviewKey, files)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	c.logger.Info().
		Str("func", "contentService.Store").
		Str("root", root).
		Int("files", len(files)).
		Msg("upload stored")

	return models.ContentID(root), nil
}

func (c *contentService) Keys(ctx context.Context, root models.ContentID) ([]string, error) {
	return c.content.List(ctx, root.String())
}

func (c *contentService) Item(ctx context.Context, root models.ContentID, key string) ([]byte, error) {
	return c.content.Get(ctx, root.String(), key)
}

func readBlob(b models.Blob) ([]byte, error) {
	rc, err := b.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
