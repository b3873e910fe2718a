// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the stores. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrKeyNotFound is returned by [KVStore.Get] when nothing is stored under
	// the key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDecodingValue is returned by [Typed] when a stored value cannot be
	// decoded into the target type.
	ErrDecodingValue = errors.New("error decoding stored value")

	// ErrContentNotFound is returned by [ContentStore] when a root or an item
	// does not exist.
	ErrContentNotFound = errors.New("content not found")

	// ErrInvalidKey is returned by [ContentStore] for item names that are
	// empty, reserved or not a plain file name.
	ErrInvalidKey = errors.New("invalid item key")

	// ErrEmptyUpload is returned by [ContentStore.Put] when no files are given.
	ErrEmptyUpload = errors.New("upload contains no files")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQLite store when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan kv row")
)
