// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-art-vault/internal/app"
	"github.com/MKhiriev/go-art-vault/internal/store"
	"github.com/MKhiriev/go-art-vault/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = []struct {
	target error
	resp   errorResponse
}{
	{validators.ErrEmptyOwner, errorResponse{http.StatusBadRequest, app.MsgNoOwnerProvided}},
	{validators.ErrNoFiles, errorResponse{http.StatusBadRequest, app.MsgNoFilesProvided}},
	{validators.ErrInvalidItemName, errorResponse{http.StatusBadRequest, app.MsgInvalidItemName}},
	{validators.ErrDuplicateItemName, errorResponse{http.StatusBadRequest, app.MsgInvalidItemName}},
	{validators.ErrMissingFileContent, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrInvalidPreview, errorResponse{http.StatusBadRequest, app.MsgInvalidPreview}},
	{validators.ErrInvalidRoot, errorResponse{http.StatusNotFound, app.MsgContentNotFound}},

	{store.ErrEmptyUpload, errorResponse{http.StatusBadRequest, app.MsgNoFilesProvided}},
	{store.ErrInvalidKey, errorResponse{http.StatusBadRequest, app.MsgInvalidItemName}},
	{store.ErrContentNotFound, errorResponse{http.StatusNotFound, app.MsgContentNotFound}},
}

// responseFromError maps a service error to the status and body message the
// client understands. Unknown errors are internal.
func responseFromError(err error) errorResponse {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

func writeError(w http.ResponseWriter, err error) {
	resp := responseFromError(err)
	http.Error(w, resp.message, resp.status)
}
