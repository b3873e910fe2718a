// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwner         = errors.New("owner is required")
	ErrNoFiles            = errors.New("at least one file is required")
	ErrInvalidItemName    = errors.New("invalid item name")
	ErrDuplicateItemName  = errors.New("duplicate item name")
	ErrInvalidPreview     = errors.New("preview must name an uploaded file or the placeholder")
	ErrMissingFileContent = errors.New("file has no content handle")
	ErrInvalidRoot        = errors.New("invalid vault root")
)
