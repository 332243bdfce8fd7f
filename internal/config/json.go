package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON decoding, with
// durations accepted as strings like "10m".
type StructuredJSONConfig struct {
	App struct {
		ProfileDir string `json:"profile_dir"`
		LogFile    string `json:"log_file"`
	} `json:"app,omitempty"`

	Storage struct {
		StorePath      string `json:"store_path"`
		BookmarksPath  string `json:"bookmarks_path"`
		HistoryPath    string `json:"history_path"`
		SyncConfigPath string `json:"sync_config_path"`
	} `json:"storage,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
		PoolSize     int      `json:"pool_size"`
	} `json:"workers,omitempty"`

	Credentials struct {
		Service  string `json:"service"`
		Account  string `json:"account"`
		Disabled bool   `json:"disabled"`
	} `json:"credentials,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ProfileDir: jsonCfg.App.ProfileDir,
			LogFile:    jsonCfg.App.LogFile,
		},
		Storage: Storage{
			StorePath:      jsonCfg.Storage.StorePath,
			BookmarksPath:  jsonCfg.Storage.BookmarksPath,
			HistoryPath:    jsonCfg.Storage.HistoryPath,
			SyncConfigPath: jsonCfg.Storage.SyncConfigPath,
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
			PoolSize:     jsonCfg.Workers.PoolSize,
		},
		Credentials: Credentials{
			Service:  jsonCfg.Credentials.Service,
			Account:  jsonCfg.Credentials.Account,
			Disabled: jsonCfg.Credentials.Disabled,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
