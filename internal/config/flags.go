// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-base-url Tusky API origin
//	-request-timeout per-request timeout (e.g., "30s", "1m")
//	-sessions-file path of the line-delimited JSON session file
//	-images-dir directory with candidate image files
//	-proxies-file path of the optional proxy list file
//	-uploads number of upload rounds per account per cycle
//	-cycle-interval pause between daily passes (e.g., "24h")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var requestTimeout time.Duration
	var sessionsFile string
	var imagesDir string
	var proxiesFile string
	var uploadsPerAccount int
	var cycleInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "base-url", "", "Tusky API origin")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&sessionsFile, "sessions-file", "", "Session file path")
	flag.StringVar(&imagesDir, "images-dir", "", "Image pool directory")
	flag.StringVar(&proxiesFile, "proxies-file", "", "Proxy list file path")
	flag.IntVar(&uploadsPerAccount, "uploads", 0, "Upload rounds per account per cycle")
	flag.DurationVar(&cycleInterval, "cycle-interval", 0, "Pause between daily passes (e.g., 24h)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			SessionsFile: sessionsFile,
			ImagesDir:    imagesDir,
			ProxiesFile:  proxiesFile,
		},
		Scheduler: Scheduler{
			UploadsPerAccount: uploadsPerAccount,
			CycleInterval:     cycleInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
