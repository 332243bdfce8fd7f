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

// ── Duration ──────────────────────────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"10m"`, want: 10 * time.Minute},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"ten minutes"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}

// ── parseJSON ─────────────────────────────────────────────────────────────────

func TestParseJSON_AllSections(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":         map[string]any{"profile_dir": "/p", "log_file": "/p/l"},
		"storage":     map[string]any{"store_path": "/s", "bookmarks_path": "/b", "history_path": "/h", "sync_config_path": "/c"},
		"workers":     map[string]any{"sync_interval": "1h", "pool_size": 2},
		"credentials": map[string]any{"service": "svc", "account": "acc", "disabled": true},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, App{ProfileDir: "/p", LogFile: "/p/l"}, cfg.App)
	assert.Equal(t, Storage{StorePath: "/s", BookmarksPath: "/b", HistoryPath: "/h", SyncConfigPath: "/c"}, cfg.Storage)
	assert.Equal(t, Workers{SyncInterval: time.Hour, PoolSize: 2}, cfg.Workers)
	assert.Equal(t, Credentials{Service: "svc", Account: "acc", Disabled: true}, cfg.Credentials)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}
