// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// MinSyncInterval is the shortest period the unattended sync trigger accepts.
const MinSyncInterval = time.Minute

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ProfileDir == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Storage.StorePath == "" || cfg.Storage.BookmarksPath == "" ||
		cfg.Storage.HistoryPath == "" || cfg.Storage.SyncConfigPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.SyncInterval < MinSyncInterval {
		return fmt.Errorf("%w: sync interval %s is below %s",
			ErrInvalidWorkerConfigs, cfg.Workers.SyncInterval, MinSyncInterval)
	}
	if cfg.Workers.PoolSize < 1 {
		return fmt.Errorf("%w: pool size must be positive", ErrInvalidWorkerConfigs)
	}

	if cfg.Credentials.Service == "" || cfg.Credentials.Account == "" {
		return ErrInvalidCredentialConfigs
	}

	return nil
}
