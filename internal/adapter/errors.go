// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors mapped from HTTP statuses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrWalletUnavailable is returned by [Wallet.Connect] when no account can
	// be connected.
	ErrWalletUnavailable = errors.New("wallet unavailable")

	// ErrNameServiceDisabled is returned by the name service adapter when no
	// service address is configured.
	ErrNameServiceDisabled = errors.New("name service disabled")

	// ErrInvalidListing is returned when a listing response is not a JSON
	// array of keys.
	ErrInvalidListing = errors.New("invalid listing response")
)
