// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ipfs/go-cid"
)

// ErrInvalidContentID is returned when a root identifier cannot be decoded.
var ErrInvalidContentID = errors.New("invalid content identifier")

// ContentID is the opaque, content-derived identifier of a secured vault.
// The zero value means "no root".
type ContentID string

// ParseContentID validates raw as a CID and returns it in canonical form.
func ParseContentID(raw string) (ContentID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidContentID
	}

	c, err := cid.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidContentID, err)
	}

	return ContentID(c.String()), nil
}

// String returns the textual form of the identifier.
func (c ContentID) String() string { return string(c) }

// IsZero reports whether no identifier is set.
func (c ContentID) IsZero() bool { return c == "" }
