// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from os.Args into
// flag.CommandLine.
//
// Flags:
//
//	-a node listen address in format [host]:[port]
//	-f node content directory
//	-d record database DSN
//	-s storage service base URL
//	-n name service base URL
//	-w wallet address to connect as
//	-v vault root or share link to open
//	-share-host host used in share links
//	-name-cache-ttl name cache lifetime (e.g. "6m")
//	-columns gallery column count
//	-request-timeout request timeout (e.g. "30s", "1m")
//	-sweep-interval name cache sweep interval
//	-c/-config config file path (.json or .toml)
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var fileStoragePath string
	var databaseDSN string
	var storageAddress string
	var nameServiceAddress string
	var walletAddress string
	var openVault string
	var shareHost string
	var nameCacheTTL time.Duration
	var columns int
	var requestTimeout time.Duration
	var sweepInterval time.Duration
	var configPath string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&fileStoragePath, "f", "", "Node content directory")
	fs.StringVar(&databaseDSN, "d", "", "Record database DSN")
	fs.StringVar(&storageAddress, "s", "", "Storage service base URL")
	fs.StringVar(&nameServiceAddress, "n", "", "Name service base URL")
	fs.StringVar(&walletAddress, "w", "", "Wallet address")
	fs.StringVar(&openVault, "v", "", "Vault root or share link to open")
	fs.StringVar(&shareHost, "share-host", "", "Host used in share links")
	fs.DurationVar(&nameCacheTTL, "name-cache-ttl", 0, "Name cache lifetime (e.g., 6m)")
	fs.IntVar(&columns, "columns", 0, "Gallery column count")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Name cache sweep interval")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ShareHost:     shareHost,
			WalletAddress: walletAddress,
			NameCacheTTL:  nameCacheTTL,
			Columns:       columns,
			OpenVault:     openVault,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				BinaryDataDir: fileStoragePath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			StorageAddress:     storageAddress,
			NameServiceAddress: nameServiceAddress,
			RequestTimeout:     requestTimeout,
		},
		Workers: Workers{
			CacheSweepInterval: sweepInterval,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
