// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrUploadFailed wraps every failure of the upload pipeline.
	ErrUploadFailed = errors.New("storage upload error")

	// ErrNoContentID is returned when the storage accepted an upload but
	// reported no root.
	ErrNoContentID = errors.New("storage returned no content id")

	ErrNoItems        = errors.New("no items to upload")
	ErrInvalidPreview = errors.New("preview is not one of the uploaded items")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoFilesProvided     = errors.New("no files provided")
	ErrNoOwnerProvided     = errors.New("no owner provided")
	ErrInvalidItemName     = errors.New("invalid item name")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrContentNotFound     = errors.New("content not found")
)

var (
	// ErrNameNotResolved is returned when an address has no usable name.
	ErrNameNotResolved = errors.New("name not resolved")

	// ErrNameMismatch is returned when the forward record of a name points to
	// a different address than the one it was reverse-resolved from.
	ErrNameMismatch = errors.New("name does not resolve back to address")
)
