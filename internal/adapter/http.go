// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/utils"
	"github.com/MKhiriev/go-art-vault/models"
)

// Multipart field names and the header of the upload endpoint.
const (
	FieldOwner   = "username"
	FieldPreview = "preview"
	FieldFile    = "file"

	HeaderContentID = "Ipfs-Hash"
)

type httpStorageAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPStorageAdapter constructs the resty implementation of
// [StorageAdapter]. It normalises and validates adapterCfg.StorageAddress and
// configures the underlying client with the resolved base URL and request
// timeout.
func NewHTTPStorageAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (StorageAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.StorageAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid storage address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpStorageAdapter{client: client, baseURL: baseURL, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [StorageAdapter]. Every file blob is opened for the
// duration of the request and closed afterwards.
func (h *httpStorageAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.ContentID, error) {
	log := h.logger.GetChildLogger()

	r := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{
			FieldOwner:   req.Owner,
			FieldPreview: req.PreviewKey,
		})

	readers := make([]io.Closer, 0, len(req.Files))
	defer func() {
		for _, rc := range readers {
			_ = rc.Close()
		}
	}()

	for _, f := range req.Files {
		if f.Blob == nil {
			return "", fmt.Errorf("upload %q: no content", f.Name)
		}
		rc, err := f.Blob.Open()
		if err != nil {
			return "", fmt.Errorf("open %q: %w", f.Name, err)
		}
		readers = append(readers, rc)
		r.SetFileReader(FieldFile, f.Name, rc)
	}

	resp, err := r.Post("/")
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	raw := resp.Header().Get(HeaderContentID)
	if raw == "" {
		log.Warn().
			Str("func", "httpStorageAdapter.Upload").
			Int("status", resp.StatusCode()).
			Msg("upload response carries no content id")
		return "", nil
	}

	root, err := models.ParseContentID(raw)
	if err != nil {
		return "", fmt.Errorf("upload response: %w", err)
	}

	log.Info().
		Str("func", "httpStorageAdapter.Upload").
		Str("root", root.String()).
		Int("files", len(req.Files)).
		Msg("vault uploaded")

	return root, nil
}

// List implements [StorageAdapter].
func (h *httpStorageAdapter) List(ctx context.Context, root models.ContentID) ([]string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("root", root.String()).
		Get("/{root}")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var keys []string
	if err = json.Unmarshal(resp.Body(), &keys); err != nil {
		return nil, errors.Join(ErrInvalidListing, err)
	}

	return keys, nil
}

// Fetch implements [StorageAdapter].
func (h *httpStorageAdapter) Fetch(ctx context.Context, root models.ContentID, key string) ([]byte, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"root": root.String(),
			"key":  key,
		}).
		Get("/{root}/{key}")
	if err != nil {
		return nil, fmt.Errorf("fetch request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// ItemURL implements [StorageAdapter].
func (h *httpStorageAdapter) ItemURL(root models.ContentID, key string) string {
	return h.baseURL + "/" + url.PathEscape(root.String()) + "/" + url.PathEscape(key)
}
