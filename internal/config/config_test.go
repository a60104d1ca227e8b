// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── env ──────────────────────────────────────────────────────────────────────

func TestParseEnv(t *testing.T) {
	t.Setenv("ADAPTER_BASE_URL", "https://staging.tusky.io")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_SESSIONS_FILE", "/tmp/tokens.txt")
	t.Setenv("STORAGE_IMAGES_DIR", "/tmp/images")
	t.Setenv("STORAGE_PROXIES_FILE", "/tmp/proxies.txt")
	t.Setenv("SCHEDULER_UPLOADS_PER_ACCOUNT", "3")
	t.Setenv("SCHEDULER_CYCLE_INTERVAL", "12h")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://staging.tusky.io", cfg.Adapter.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/tokens.txt", cfg.Storage.SessionsFile)
	assert.Equal(t, "/tmp/images", cfg.Storage.ImagesDir)
	assert.Equal(t, "/tmp/proxies.txt", cfg.Storage.ProxiesFile)
	assert.Equal(t, 3, cfg.Scheduler.UploadsPerAccount)
	assert.Equal(t, 12*time.Hour, cfg.Scheduler.CycleInterval)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

// ── json ─────────────────────────────────────────────────────────────────────

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"adapter": {"base_url": "https://api.tusky.io", "request_timeout": "20s"},
		"storage": {"sessions_file": "state/tokens.txt", "images_dir": "state/images"},
		"scheduler": {"uploads_per_account": 2, "cycle_interval": "6h"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.tusky.io", cfg.Adapter.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "state/tokens.txt", cfg.Storage.SessionsFile)
	assert.Equal(t, 2, cfg.Scheduler.UploadsPerAccount)
	assert.Equal(t, 6*time.Hour, cfg.Scheduler.CycleInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"90s"`), &d))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, Duration(time.Second), d)

	require.Error(t, json.Unmarshal([]byte(`"ninety seconds"`), &d))
}

// ── defaults and validation ──────────────────────────────────────────────────

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultSessionsFile, cfg.Storage.SessionsFile)
	assert.Equal(t, DefaultImagesDir, cfg.Storage.ImagesDir)
	assert.Equal(t, DefaultProxiesFile, cfg.Storage.ProxiesFile)
	assert.Equal(t, DefaultUploadsPerAccount, cfg.Scheduler.UploadsPerAccount)
	assert.Equal(t, DefaultCycleInterval, cfg.Scheduler.CycleInterval)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Adapter:   Adapter{BaseURL: "https://staging.tusky.io", RequestTimeout: time.Minute},
		Scheduler: Scheduler{UploadsPerAccount: 5, CycleInterval: time.Hour},
	}
	cfg.applyDefaults()

	assert.Equal(t, "https://staging.tusky.io", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 5, cfg.Scheduler.UploadsPerAccount)
	assert.Equal(t, time.Hour, cfg.Scheduler.CycleInterval)
}

func TestValidate(t *testing.T) {
	valid := &StructuredConfig{}
	valid.applyDefaults()
	require.NoError(t, valid.validate())

	noURL := *valid
	noURL.Adapter.BaseURL = ""
	assert.ErrorIs(t, noURL.validate(), ErrInvalidAdapterConfigs)

	noSessions := *valid
	noSessions.Storage.SessionsFile = ""
	assert.ErrorIs(t, noSessions.validate(), ErrInvalidStorageConfigs)

	badUploads := *valid
	badUploads.Scheduler.UploadsPerAccount = -1
	assert.ErrorIs(t, badUploads.validate(), ErrInvalidSchedulerConfigs)
}

// ── builder merge ────────────────────────────────────────────────────────────

func TestConfigBuilder_MergePriority(t *testing.T) {
	builder := newConfigBuilder()
	builder.configs = append(builder.configs,
		&StructuredConfig{Adapter: Adapter{BaseURL: "https://from-env"}},
		&StructuredConfig{
			Adapter:   Adapter{BaseURL: "https://from-flags", RequestTimeout: time.Minute},
			Scheduler: Scheduler{UploadsPerAccount: 4},
		},
	)

	cfg, err := builder.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value, so earlier sources win.
	assert.Equal(t, "https://from-env", cfg.Adapter.BaseURL)
	assert.Equal(t, time.Minute, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Scheduler.UploadsPerAccount)
	// Untouched fields fall back to defaults.
	assert.Equal(t, DefaultSessionsFile, cfg.Storage.SessionsFile)
}
