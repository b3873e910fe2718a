// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/utils"
)

type reverseResponse struct {
	Name string `json:"name"`
}

type resolveResponse struct {
	Address string `json:"address"`
}

type httpNameServiceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNameServiceAdapter constructs the resty implementation of
// [NameServiceAdapter]:
//
//	GET /reverse/{address} -> {"name": "..."}
//	GET /resolve/{name}    -> {"address": "0x..."}
//
// An empty adapterCfg.NameServiceAddress yields an adapter whose lookups fail
// with [ErrNameServiceDisabled].
func NewHTTPNameServiceAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (NameServiceAdapter, error) {
	if strings.TrimSpace(adapterCfg.NameServiceAddress) == "" {
		return disabledNameService{}, nil
	}

	baseURL, err := normalizeBaseURL(adapterCfg.NameServiceAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid name service address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpNameServiceAdapter{client: client, logger: logger}, nil
}

// Reverse implements [NameServiceAdapter].
func (h *httpNameServiceAdapter) Reverse(ctx context.Context, address string) (string, error) {
	var result reverseResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("address", address).
		SetResult(&result).
		Get("/reverse/{address}")
	if err != nil {
		return "", fmt.Errorf("reverse request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	name := strings.TrimSpace(result.Name)
	if name == "" {
		return "", fmt.Errorf("%w: empty reverse record for %s", ErrNotFound, address)
	}

	return name, nil
}

// Resolve implements [NameServiceAdapter].
func (h *httpNameServiceAdapter) Resolve(ctx context.Context, name string) (string, error) {
	var result resolveResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("name", name).
		SetResult(&result).
		Get("/resolve/{name}")
	if err != nil {
		return "", fmt.Errorf("resolve request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	addr := strings.TrimSpace(result.Address)
	if addr == "" {
		return "", fmt.Errorf("%w: %s resolves to nothing", ErrNotFound, name)
	}

	return addr, nil
}

type disabledNameService struct{}

func (disabledNameService) Reverse(context.Context, string) (string, error) {
	return "", ErrNameServiceDisabled
}

func (disabledNameService) Resolve(context.Context, string) (string, error) {
	return "", ErrNameServiceDisabled
}
