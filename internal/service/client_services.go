// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/store"
)

// ClientAdapters groups the outbound collaborators of the client services.
type ClientAdapters struct {
	Storage     adapter.StorageAdapter
	NameService adapter.NameServiceAdapter
}

type ClientServices struct {
	UploadService    ClientUploadService
	AddressService   ClientAddressService
	WhitelistService ClientWhitelistService
	ListingService   ClientListingService
}

func NewClientServices(kv store.KVStore, adapters ClientAdapters, appCfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		UploadService:    NewClientUploadService(adapters.Storage, logger),
		AddressService:   NewClientAddressService(adapters.NameService, kv, appCfg, logger),
		WhitelistService: NewClientWhitelistService(kv, logger),
		ListingService:   NewClientListingService(adapters.Storage, logger),
	}
}
