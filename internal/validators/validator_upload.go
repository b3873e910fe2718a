// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-art-vault/models"
)

const (
	FieldOwner   = "owner"
	FieldPreview = "preview"
	FieldFiles   = "files"
	FieldRoot    = "root"
	FieldItemKey = "item_key"
)

type UploadValidator struct {
}

// NewUploadValidator validates [models.UploadRequest], [models.ContentID]
// and item keys (plain strings).
func NewUploadValidator() Validator {
	return &UploadValidator{}
}

func (v *UploadValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.ContentID:
		return validateRoot(value)

	case string:
		return validateItemKey(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *UploadValidator) validateUploadRequest(_ context.Context, req models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldFiles, FieldPreview}
	}

	for _, field := range fields {
		switch field {
		case FieldOwner:
			if strings.TrimSpace(req.Owner) == "" {
				return ErrEmptyOwner
			}
		case FieldFiles:
			if err := validateFiles(req.Files); err != nil {
				return err
			}
		case FieldPreview:
			if err := validatePreview(req); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}

func validateFiles(files []models.LocalItem) error {
	if len(files) == 0 {
		return ErrNoFiles
	}

	seen := make(map[string]struct{}, len(files))
	for _, f := range files {
		if err := validateItemKey(f.Name); err != nil {
			return err
		}
		if models.IsReservedKey(f.Name) {
			return fmt.Errorf("%w: %q is reserved", ErrInvalidItemName, f.Name)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateItemName, f.Name)
		}
		if f.Blob == nil {
			return fmt.Errorf("%w: %q", ErrMissingFileContent, f.Name)
		}
		seen[f.Name] = struct{}{}
	}
	return nil
}

func validatePreview(req models.UploadRequest) error {
	if req.PreviewKey == models.PlaceholderKey {
		return nil
	}
	for _, f := range req.Files {
		if f.Name == req.PreviewKey {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidPreview, req.PreviewKey)
}

// validateItemKey accepts plain file names and the reserved record keys.
func validateItemKey(key string) error {
	switch {
	case strings.TrimSpace(key) == "",
		key == models.PlaceholderKey,
		strings.HasPrefix(key, "."),
		strings.ContainsAny(key, `/\`):
		return fmt.Errorf("%w: %q", ErrInvalidItemName, key)
	}
	return nil
}

func validateRoot(root models.ContentID) error {
	if _, err := models.ParseContentID(root.String()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	return nil
}
