// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/go-art-vault/internal/app"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/utils"
	"github.com/MKhiriev/go-art-vault/models"
	"github.com/go-chi/chi/v5"
)

// Multipart fields of an upload.
const (
	formFieldOwner   = "username"
	formFieldPreview = "preview"
	formFieldFile    = "file"

	headerContentID = "Ipfs-Hash"
)

const (
	// MaxUploadSize caps the body of one upload.
	MaxUploadSize = 64 << 20

	multipartMemory = 8 << 20
)

type uploadResponse struct {
	Root string `json:"root"`
}

// multipartBlob reads a file part lazily.
type multipartBlob struct {
	header *multipart.FileHeader
}

func (b multipartBlob) Open() (io.ReadCloser, error) {
	return b.header.Open()
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Str("func", "*Handler.upload").Msg("upload exceeds size limit")
			http.Error(w, app.MsgPayloadTooLarge, http.StatusRequestEntityTooLarge)
			return
		}
		log.Err(err).Str("func", "*Handler.upload").Msg("invalid multipart body was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	req := models.UploadRequest{
		Owner:      firstValue(r.MultipartForm, formFieldOwner),
		PreviewKey: firstValue(r.MultipartForm, formFieldPreview),
	}
	for _, fh := range r.MultipartForm.File[formFieldFile] {
		req.Files = append(req.Files, models.LocalItem{Name: fh.Filename, Blob: multipartBlob{header: fh}})
	}

	root, err := h.services.ContentService.Store(r.Context(), req)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.upload").
			Int("status", statusFromError(err)).
			Msg("error storing upload")
		writeError(w, err)
		return
	}

	w.Header().Set(headerContentID, root.String())
	if _, err = utils.WriteJSON(w, uploadResponse{Root: root.String()}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error writing response")
	}
}

func (h *Handler) listKeys(w http.ResponseWriter, r *http.Request) {
	root := models.ContentID(chi.URLParam(r, "root"))
	log := logger.FromRequest(r).ForVault(root.String())

	keys, err := h.services.ContentService.Keys(r.Context(), root)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.listKeys").
			Msg("error listing keys")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, keys, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listKeys").Msg("error writing response")
	}
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	root := models.ContentID(chi.URLParam(r, "root"))
	key := chi.URLParam(r, "key")
	log := logger.FromRequest(r).ForVault(root.String())

	data, err := h.services.ContentService.Item(r.Context(), root, key)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.getItem").
			Str("key", key).
			Msg("error reading item")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func firstValue(form *multipart.Form, field string) string {
	if values := form.Value[field]; len(values) > 0 {
		return values[0]
	}
	return ""
}
