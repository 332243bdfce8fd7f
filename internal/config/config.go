// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for franny-sync.
// It aggregates all sub-configurations and is populated by merging values
// from an optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings: the profile directory and the log
	// file location.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the local collection files, the sync
	// settings file and the encrypted sync store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for the background worker pool and the
	// periodic sync trigger.
	Workers Workers `envPrefix:"WORKERS_"`

	// Credentials holds the secure credential backend lookup keys.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ProfileDir is the directory holding bookmarks, history and sync
	// settings. Env: APP_PROFILE_DIR
	ProfileDir string `env:"PROFILE_DIR"`

	// LogFile is the rotated log file used by the interactive control
	// surfaces. Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups file locations used by the application. Empty paths are
// derived from App.ProfileDir.
type Storage struct {
	// StorePath is the encrypted sync store file.
	// Env: STORAGE_STORE_PATH
	StorePath string `env:"STORE_PATH"`

	// BookmarksPath is the local bookmarks file.
	// Env: STORAGE_BOOKMARKS_PATH
	BookmarksPath string `env:"BOOKMARKS_PATH"`

	// HistoryPath is the local history file.
	// Env: STORAGE_HISTORY_PATH
	HistoryPath string `env:"HISTORY_PATH"`

	// SyncConfigPath is the sync settings file.
	// Env: STORAGE_SYNC_CONFIG_PATH
	SyncConfigPath string `env:"SYNC_CONFIG_PATH"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval is the period of the unattended sync trigger.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// PoolSize bounds the number of concurrently running background jobs.
	// Env: WORKERS_POOL_SIZE
	PoolSize int `env:"POOL_SIZE"`
}

// Credentials holds the keys under which the sync passphrase is kept in the
// secure credential backend.
type Credentials struct {
	// Service is the keyring service name. Env: CREDENTIALS_SERVICE
	Service string `env:"SERVICE"`

	// Account is the keyring account name. Env: CREDENTIALS_ACCOUNT
	Account string `env:"ACCOUNT"`

	// Disabled skips the secure backend entirely and runs in the degraded
	// "no keyring" mode. Env: CREDENTIALS_DISABLED
	Disabled bool `env:"DISABLED"`
}

// GetStructuredConfig loads, merges, defaults and validates the application
// configuration. Sources are applied in the following order (later sources
// override non-zero fields of earlier ones):
//  1. JSON file (path resolved from env or flags)
//  2. Environment variables
//  3. Command-line flags
//
// flagCfg carries the values bound to the command-line flags; it may be nil.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flagCfg).
		withJSON().
		build()
}
