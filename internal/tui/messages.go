// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-art-vault/internal/vault"
	"github.com/MKhiriev/go-art-vault/models"
)

type connectedMsg struct {
	account models.Account
	err     error
}

type uploadDoneMsg struct {
	result vault.UploadResult
}

type listingLoadedMsg struct {
	result vault.ListingResult
}

type namesResolvedMsg struct {
	names map[string]string
}

type pastedMsg struct {
	text string
	err  error
}

type copiedMsg struct {
	what string
}

type failedMsg struct {
	err error
}

type clearStatusMsg struct{}

// clearEnteringMsg ends the highlight of tiles that entered in layout
// generation gen.
type clearEnteringMsg struct {
	gen int
}
