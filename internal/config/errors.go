// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid outbound client settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty session file path or image directory).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSchedulerConfigs indicates invalid daily-cycle settings
	// (for example, zero upload rounds or a non-positive cycle interval).
	ErrInvalidSchedulerConfigs = errors.New("invalid scheduler configuration")
)
