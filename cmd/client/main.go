// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-art-vault/internal/adapter"
	"github.com/MKhiriev/go-art-vault/internal/client"
	"github.com/MKhiriev/go-art-vault/internal/config"
	"github.com/MKhiriev/go-art-vault/internal/logger"
	"github.com/MKhiriev/go-art-vault/internal/service"
	"github.com/MKhiriev/go-art-vault/internal/store"
	"github.com/MKhiriev/go-art-vault/internal/tui"
	"github.com/MKhiriev/go-art-vault/internal/workers"
	"github.com/MKhiriev/go-art-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("art-vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storageAdapter, err := adapter.NewHTTPStorageAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage adapter")
	}

	nameService, err := adapter.NewHTTPNameServiceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create name service adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage.KV, service.ClientAdapters{
		Storage:     storageAdapter,
		NameService: nameService,
	}, cfg.App, log)

	wallet := adapter.NewStaticWallet(cfg.App, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ui, err := tui.New(services, storageAdapter, wallet, cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, workers.NewClientWorkers(services, cfg.Workers, log), localStorage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
