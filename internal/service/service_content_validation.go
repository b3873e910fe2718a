// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-art-vault/internal/validators"
	"github.com/MKhiriev/go-art-vault/models"
)

type ContentValidationService struct {
	inner     ContentService
	validator validators.Validator
}

func NewContentValidationService() ContentServiceWrapper {
	return &ContentValidationService{
		validator: validators.NewUploadValidator(),
	}
}

func (v *ContentValidationService) Store(ctx context.Context, req models.UploadRequest) (models.ContentID, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return "", fmt.Errorf("error during upload validation before saving: %w", err)
	}

	return v.inner.Store(ctx, req)
}

func (v *ContentValidationService) Keys(ctx context.Context, root models.ContentID) ([]string, error) {
	if err := v.validator.Validate(ctx, root, validators.FieldRoot); err != nil {
		return nil, err
	}

	return v.inner.Keys(ctx, root)
}

func (v *ContentValidationService) Item(ctx context.Context, root models.ContentID, key string) ([]byte, error) {
	if err := v.validator.Validate(ctx, root, validators.FieldRoot); err != nil {
		return nil, err
	}
	if err := v.validator.Validate(ctx, key, validators.FieldItemKey); err != nil {
		return nil, err
	}

	return v.inner.Item(ctx, root, key)
}

func (v *ContentValidationService) Wrap(wrapped ContentService) ContentService {
	v.inner = wrapped
	return v
}
