// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the vault client and the storage node.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (JSON, or TOML when the path ends in .toml)
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for the client and
// [GetNodeConfig] for the storage node.
package config
