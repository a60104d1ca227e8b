// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults have already
// been applied, so an invalid value here means an explicit bad setting.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.SessionsFile == "" || cfg.Storage.ImagesDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Scheduler.UploadsPerAccount <= 0 || cfg.Scheduler.CycleInterval <= 0 {
		return ErrInvalidSchedulerConfigs
	}

	return nil
}
