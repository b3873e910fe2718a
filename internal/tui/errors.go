// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/service"
	"github.com/MKhiriev/go-art-vault/internal/share"
	"github.com/MKhiriev/go-art-vault/internal/vault"
)

// humanizeError turns an error into the line shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, vault.ErrNoItems):
		return "Add at least one file first"
	case errors.Is(err, vault.ErrSecured):
		return "A secured vault cannot be changed"
	case errors.Is(err, vault.ErrNotOwner):
		return "Only the owner can do that"
	case errors.Is(err, vault.ErrEmptyAddress):
		return "Enter an address to share with"
	case errors.Is(err, vault.ErrReservedName):
		return "This file name is reserved"
	case errors.Is(err, share.ErrNoRoot), errors.Is(err, share.ErrEmptyRoot):
		return "This is not a vault link"
	case errors.Is(err, adapter.ErrWalletUnavailable):
		return "Wallet unavailable"
	case errors.Is(err, service.ErrPayloadTooLarge):
		return "The files are too large for the storage node"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the storage node is unreachable"
	}

	return err.Error()
}
