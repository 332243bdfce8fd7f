package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultSyncInterval is the auto-sync period used when nothing else is
	// configured.
	DefaultSyncInterval = 10 * time.Minute
	// DefaultPoolSize leaves room for one sync and one settings write.
	DefaultPoolSize = 2
	// DefaultCredentialService is the keyring service the passphrase lives under.
	DefaultCredentialService = "franny_sync"
	// DefaultCredentialAccount is used when neither USER nor USERNAME is set.
	DefaultCredentialAccount = "franny_user"

	storeFileName      = ".franny_sync_store"
	bookmarksFileName  = "bookmarks.json"
	historyFileName    = "history.json"
	syncConfigFileName = "sync_config.json"
	logFileName        = "franny.log"
)

// applyDefaults fills every field no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.ProfileDir == "" {
		cfg.App.ProfileDir = defaultProfileDir()
	}
	if cfg.App.LogFile == "" {
		cfg.App.LogFile = filepath.Join(cfg.App.ProfileDir, logFileName)
	}

	if cfg.Storage.StorePath == "" {
		cfg.Storage.StorePath = defaultStorePath(cfg.App.ProfileDir)
	}
	if cfg.Storage.BookmarksPath == "" {
		cfg.Storage.BookmarksPath = filepath.Join(cfg.App.ProfileDir, bookmarksFileName)
	}
	if cfg.Storage.HistoryPath == "" {
		cfg.Storage.HistoryPath = filepath.Join(cfg.App.ProfileDir, historyFileName)
	}
	if cfg.Storage.SyncConfigPath == "" {
		cfg.Storage.SyncConfigPath = filepath.Join(cfg.App.ProfileDir, syncConfigFileName)
	}

	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.PoolSize == 0 {
		cfg.Workers.PoolSize = DefaultPoolSize
	}

	if cfg.Credentials.Service == "" {
		cfg.Credentials.Service = DefaultCredentialService
	}
	if cfg.Credentials.Account == "" {
		cfg.Credentials.Account = DefaultAccount()
	}
}

// DefaultAccount returns the keyring account name for the current OS user:
// $USER, then $USERNAME, then [DefaultCredentialAccount].
func DefaultAccount() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u := os.Getenv("USERNAME"); u != "" {
		return u
	}
	return DefaultCredentialAccount
}

func defaultProfileDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "franny")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "franny")
	}
	return filepath.Join(os.TempDir(), "franny")
}

// defaultStorePath keeps the store in the home directory so every profile of
// the same user shares it; without a home it lands in the profile.
func defaultStorePath(profileDir string) string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, storeFileName)
	}
	return filepath.Join(profileDir, storeFileName)
}
