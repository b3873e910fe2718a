// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the development storage node.
//
// It exposes the upload, listing and item endpoints the vault client talks
// to. Request tracing, access logging and response compression are handled
// by middleware before requests reach the content service.
package http
