// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the persistence layer: the client's key-value record
// store (SQLite via squirrel, or in memory) with its typed JSON view, and the
// storage node's file-backed content store.
package store
