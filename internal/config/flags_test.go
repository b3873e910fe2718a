// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withArgs resets flag.CommandLine and os.Args for a single ParseFlags call.
func withArgs(t *testing.T, args ...string) {
	t.Helper()

	oldCommandLine, oldArgs := flag.CommandLine, os.Args
	t.Cleanup(func() {
		flag.CommandLine = oldCommandLine
		os.Args = oldArgs
	})

	flag.CommandLine = flag.NewFlagSet("cmd", flag.ContinueOnError)
	flag.CommandLine.SetOutput(io.Discard)
	os.Args = append([]string{"cmd"}, args...)
}

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Host: "", Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expectedAddr: NetAddress{Port: 8080}},
		{name: "missing colon", input: "localhost8080", expectError: true},
		{name: "port not a number", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "bad host", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, addr)
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "localhost:8080",
				"-f", "/var/data",
				"-d", "vault.db",
				"-s", "http://localhost:8080",
				"-n", "http://localhost:9000",
				"-w", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
				"-v", "bafyroot",
				"-share-host", "https://art.example",
				"-name-cache-ttl", "6m",
				"-columns", "4",
				"-request-timeout", "30s",
				"-sweep-interval", "1m",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
				assert.Equal(t, "/var/data", cfg.Storage.Files.BinaryDataDir)
				assert.Equal(t, "vault.db", cfg.Storage.DB.DSN)
				assert.Equal(t, "http://localhost:8080", cfg.Adapter.StorageAddress)
				assert.Equal(t, "http://localhost:9000", cfg.Adapter.NameServiceAddress)
				assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", cfg.App.WalletAddress)
				assert.Equal(t, "bafyroot", cfg.App.OpenVault)
				assert.Equal(t, "https://art.example", cfg.App.ShareHost)
				assert.Equal(t, 6*time.Minute, cfg.App.NameCacheTTL)
				assert.Equal(t, 4, cfg.App.Columns)
				assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, time.Minute, cfg.Workers.CacheSweepInterval)
				assert.Equal(t, "/path/to/config.json", cfg.FilePath)
			},
		},
		{
			name: "config alias flag",
			args: []string{"-config", "/path/to/config.toml"},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/path/to/config.toml", cfg.FilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Empty(t, cfg.Server.HTTPAddress)
				assert.Empty(t, cfg.Storage.DB.DSN)
				assert.Empty(t, cfg.Adapter.StorageAddress)
				assert.Empty(t, cfg.FilePath)
				assert.Zero(t, cfg.App.Columns)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)

			cfg, err := ParseFlags()
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_InvalidAddress tests ParseFlags with invalid addresses
func TestParseFlags_InvalidAddress(t *testing.T) {
	withArgs(t, "-a", "not-an-address")

	cfg, err := ParseFlags()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
