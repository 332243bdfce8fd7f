package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncConfig_UnmarshalJSON(t *testing.T) {
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		input       string
		wantEnabled bool
		wantLast    *time.Time
	}{
		{name: "current layout", input: `{"enabled":true,"last_sync":"2026-01-02T03:04:05Z"}`, wantEnabled: true, wantLast: &at},
		{name: "older layout", input: `{"sync_enabled":true,"last_sync":"2026-01-02T03:04:05"}`, wantEnabled: true, wantLast: &at},
		{name: "enabled wins over older key", input: `{"enabled":false,"sync_enabled":true}`},
		{name: "unparseable last sync is dropped", input: `{"enabled":true,"last_sync":"soon"}`, wantEnabled: true},
		{name: "empty document", input: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c SyncConfig
			require.NoError(t, json.Unmarshal([]byte(tt.input), &c))
			assert.Equal(t, tt.wantEnabled, c.Enabled)
			if tt.wantLast == nil {
				assert.Nil(t, c.LastSync)
				return
			}
			require.NotNil(t, c.LastSync)
			assert.True(t, tt.wantLast.Equal(*c.LastSync))
		})
	}
}

func TestSyncConfig_UnmarshalJSONRejectsNonObject(t *testing.T) {
	var c SyncConfig
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &c))
}

func TestSyncConfig_Clone(t *testing.T) {
	at := time.Now()
	c := SyncConfig{Enabled: true, LastSync: &at}

	clone := c.Clone()
	require.NotNil(t, clone.LastSync)
	assert.NotSame(t, c.LastSync, clone.LastSync)
	assert.True(t, c.LastSync.Equal(*clone.LastSync))
}
