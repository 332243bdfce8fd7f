package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs and returns the config
// the flag values are written into. The returned pointer is only meaningful
// after fs has been parsed; pass it to [GetStructuredConfig].
//
// Flags:
//
//	-c/--config        json file path with configs
//	--profile-dir      directory holding bookmarks, history and sync settings
//	--log-file         rotated log file path
//	--store            encrypted sync store path
//	--sync-interval    auto-sync period (e.g. "10m")
//	--pool-size        maximum concurrent background jobs
//	--keyring-service  keyring service name
//	--keyring-account  keyring account name
//	--no-keyring       run without the secure credential backend
func BindFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.ProfileDir, "profile-dir", "", "Profile directory")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "Log file path")
	fs.StringVar(&cfg.Storage.StorePath, "store", "", "Encrypted sync store path")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Auto-sync interval (e.g., 10m, 1h)")
	fs.IntVar(&cfg.Workers.PoolSize, "pool-size", 0, "Maximum concurrent background jobs")
	fs.StringVar(&cfg.Credentials.Service, "keyring-service", "", "Keyring service name")
	fs.StringVar(&cfg.Credentials.Account, "keyring-account", "", "Keyring account name")
	fs.BoolVar(&cfg.Credentials.Disabled, "no-keyring", false, "Do not use the OS keyring")

	return cfg
}
