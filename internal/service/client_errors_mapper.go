// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgNoFilesProvided:
			return ErrNoFilesProvided
		case app.MsgNoOwnerProvided:
			return ErrNoOwnerProvided
		case app.MsgInvalidItemName:
			return ErrInvalidItemName
		case app.MsgInvalidPreview:
			return ErrInvalidPreview
		}

	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return ErrPayloadTooLarge

	case errors.Is(err, adapter.ErrNotFound):
		return errors.Join(ErrContentNotFound, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return strings.TrimSpace(msg[idx+2:])
	}
	return msg
}
