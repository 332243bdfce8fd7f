// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// isolateEnv clears every variable the config reads so the host
// environment cannot leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CONFIG", "APP_PROFILE_DIR", "APP_LOG_FILE",
		"STORAGE_STORE_PATH", "STORAGE_BOOKMARKS_PATH", "STORAGE_HISTORY_PATH", "STORAGE_SYNC_CONFIG_PATH",
		"WORKERS_SYNC_INTERVAL", "WORKERS_POOL_SIZE",
		"CREDENTIALS_SERVICE", "CREDENTIALS_ACCOUNT", "CREDENTIALS_DISABLED",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("USER", "alice")
	t.Setenv("HOME", t.TempDir())
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderAppliesDefaults(t *testing.T) {
	isolateEnv(t)
	profile := t.TempDir()
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{App: App{ProfileDir: profile}})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(profile, "bookmarks.json"), cfg.Storage.BookmarksPath)
	assert.Equal(t, filepath.Join(profile, "history.json"), cfg.Storage.HistoryPath)
	assert.Equal(t, filepath.Join(profile, "sync_config.json"), cfg.Storage.SyncConfigPath)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".franny_sync_store"), cfg.Storage.StorePath)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultPoolSize, cfg.Workers.PoolSize)
	assert.Equal(t, "franny_sync", cfg.Credentials.Service)
	assert.Equal(t, "alice", cfg.Credentials.Account)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterConfigOverridesEarlier(t *testing.T) {
	isolateEnv(t)
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{ProfileDir: "/first"}, Workers: Workers{PoolSize: 3}},
		&StructuredConfig{App: App{ProfileDir: "/second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/second", cfg.App.ProfileDir)
	assert.Equal(t, 3, cfg.Workers.PoolSize, "zero fields must not override")
}

func TestBuild_RejectsShortInterval(t *testing.T) {
	isolateEnv(t)
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Workers: Workers{SyncInterval: 30 * time.Second}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_NilIsIgnored(t *testing.T) {
	b := newConfigBuilder().withFlags(nil)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_PrependsFileConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"profile_dir": "/from-json"},
	})
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/from-json", b.configs[0].App.ProfileDir)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_Precedence(t *testing.T) {
	isolateEnv(t)
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"profile_dir": "/json"},
		"workers": map[string]any{"sync_interval": "20m", "pool_size": 4},
	})
	t.Setenv("CONFIG", path)
	t.Setenv("WORKERS_SYNC_INTERVAL", "15m")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flagCfg := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--profile-dir", "/flags"}))

	cfg, err := GetStructuredConfig(flagCfg)
	require.NoError(t, err)

	assert.Equal(t, "/flags", cfg.App.ProfileDir, "flags beat json")
	assert.Equal(t, 15*time.Minute, cfg.Workers.SyncInterval, "env beats json")
	assert.Equal(t, 4, cfg.Workers.PoolSize, "json fills the rest")
}
