// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// tusky-uploader application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds network settings for the outbound Tusky API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds paths for all local state: the session file, the image
	// pool directory and the proxy list file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Scheduler holds the daily-cycle tuning knobs.
	Scheduler Scheduler `envPrefix:"SCHEDULER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds settings for the outbound HTTP transport layer.
type Adapter struct {
	// BaseURL is the Tusky API origin (e.g. "https://api.tusky.io").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the explicit per-request timeout for every outbound
	// call (e.g. "30s"). A hang on one request must not stall the cycle
	// indefinitely.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the paths of all local state files used by the application.
type Storage struct {
	// SessionsFile is the path of the line-delimited JSON session file
	// holding one record per known address.
	// Env: STORAGE_SESSIONS_FILE
	SessionsFile string `env:"SESSIONS_FILE"`

	// ImagesDir is the directory holding the candidate image files for
	// uploads.
	// Env: STORAGE_IMAGES_DIR
	ImagesDir string `env:"IMAGES_DIR"`

	// ProxiesFile is the path of the newline-delimited proxy list. The file
	// is optional; when absent all traffic goes direct.
	// Env: STORAGE_PROXIES_FILE
	ProxiesFile string `env:"PROXIES_FILE"`
}

// Scheduler holds the daily-cycle tuning knobs.
type Scheduler struct {
	// UploadsPerAccount is the number of upload rounds performed for each
	// account per cycle. Each round uploads 1-3 randomly chosen images.
	// Env: SCHEDULER_UPLOADS_PER_ACCOUNT
	UploadsPerAccount int `env:"UPLOADS_PER_ACCOUNT"`

	// CycleInterval is the pause between the end of one full pass over all
	// accounts and the start of the next (e.g. "24h").
	// Env: SCHEDULER_CYCLE_INTERVAL
	CycleInterval time.Duration `env:"CYCLE_INTERVAL"`
}

// Defaults applied to fields left empty by every configuration source.
const (
	DefaultBaseURL           = "https://api.tusky.io"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultSessionsFile      = "tokens.txt"
	DefaultImagesDir         = "images"
	DefaultProxiesFile       = "proxies.txt"
	DefaultUploadsPerAccount = 1
	DefaultCycleInterval     = 24 * time.Hour
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty after the merge fall back to the package defaults.
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.SessionsFile == "" {
		cfg.Storage.SessionsFile = DefaultSessionsFile
	}
	if cfg.Storage.ImagesDir == "" {
		cfg.Storage.ImagesDir = DefaultImagesDir
	}
	if cfg.Storage.ProxiesFile == "" {
		cfg.Storage.ProxiesFile = DefaultProxiesFile
	}
	if cfg.Scheduler.UploadsPerAccount <= 0 {
		cfg.Scheduler.UploadsPerAccount = DefaultUploadsPerAccount
	}
	if cfg.Scheduler.CycleInterval <= 0 {
		cfg.Scheduler.CycleInterval = DefaultCycleInterval
	}
}
