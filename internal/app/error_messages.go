// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the storage
// node handlers and by the client when it interprets node responses.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies. The client matches on them to tell apart failures that
// share a status code.
package app

const (
	// MsgInvalidDataProvided is returned when the multipart body cannot be
	// parsed.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgNoFilesProvided is returned when an upload carries no file parts.
	MsgNoFilesProvided = "no files provided"

	// MsgNoOwnerProvided is returned when an upload has an empty username
	// field.
	MsgNoOwnerProvided = "no owner provided"

	// MsgInvalidItemName is returned when a file part has an empty, reserved
	// or path-like name.
	MsgInvalidItemName = "invalid item name"

	// MsgInvalidPreview is returned when the preview field names neither an
	// uploaded file nor the placeholder.
	MsgInvalidPreview = "preview must name an uploaded file"

	// MsgPayloadTooLarge is returned when the upload exceeds the node limit.
	MsgPayloadTooLarge = "payload too large"

	// MsgContentNotFound is returned when a root or an item does not exist.
	MsgContentNotFound = "content not found"

	// MsgInternalServerError is returned when an unexpected node-side failure
	// occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
