// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/tusky-uploader/internal/adapter"
	"github.com/MKhiriev/tusky-uploader/internal/config"
	"github.com/MKhiriev/tusky-uploader/internal/logger"
	"github.com/MKhiriev/tusky-uploader/internal/service"
	"github.com/MKhiriev/tusky-uploader/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("tusky-uploader")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	accounts := config.LoadAccounts()
	if len(accounts) == 0 {
		log.Fatal().Msg("no accounts configured: set PRIVATE_KEY_1 or MNEMONIC_1")
	}
	log.Info().Int("accounts", len(accounts)).Msg("accounts loaded")

	proxies, err := config.LoadProxies(cfg.Storage.ProxiesFile)
	if err != nil {
		log.Warn().Err(err).Msg("proxy list unavailable, running without proxies")
	}

	tuskyAdapter := adapter.NewTuskyAdapter(cfg.Adapter.BaseURL, cfg.Adapter.RequestTimeout, log)
	sessionStore := store.NewFileSessionStore(cfg.Storage.SessionsFile, log)
	services := service.NewServices(tuskyAdapter, sessionStore, cfg.Storage, log)

	runner := service.NewRunner(services, accounts, proxies, cfg.Scheduler, log, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("runner stopped")
	}
	log.Info().Msg("shutting down")
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
