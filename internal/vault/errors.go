// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vault

import (
	"errors"
	"fmt"
)

var (
	// ErrTransitionNotAllowed is returned when an action is not valid in the
	// current phase. The session is left unchanged.
	ErrTransitionNotAllowed = errors.New("transition not allowed")

	// ErrNoItems is returned when submitting an empty vault.
	ErrNoItems = errors.New("vault has no items")

	// ErrNotOwner is returned when a non-owner tries to mutate a secured vault.
	ErrNotOwner = errors.New("only the vault owner can do this")

	// ErrSecured is returned when staging into a vault that is already secured.
	ErrSecured = errors.New("vault is secured")

	// ErrEmptyAddress is returned when sharing with an empty address.
	ErrEmptyAddress = errors.New("address is empty")

	// ErrNotWhitelisted is returned when removing an address that has no access.
	ErrNotWhitelisted = errors.New("address is not whitelisted")

	// ErrEmptyName is returned when staging an item without a name.
	ErrEmptyName = errors.New("item name is empty")

	// ErrReservedName is returned when staging an item under a reserved key.
	ErrReservedName = errors.New("item name is reserved")

	// ErrEmptyRoot is returned when an upload reports success without a root.
	ErrEmptyRoot = errors.New("upload returned no root")

	// ErrItemNotFound is returned when an item key is unknown.
	ErrItemNotFound = errors.New("item not found")
)

// UploadError is the failure stored in the session when securing fails.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	return e.Message
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

func newUploadError(err error) *UploadError {
	return &UploadError{Message: fmt.Sprintf("upload failed: %v", err), Err: err}
}
