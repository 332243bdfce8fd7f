package models

import (
	"encoding/json"
	"time"
)

// SyncConfig is the persisted sync settings document.
type SyncConfig struct {
	Enabled  bool       `json:"enabled"`
	LastSync *time.Time `json:"last_sync,omitempty"`
}

// UnmarshalJSON accepts both the current layout and the older one that used
// "sync_enabled" and a free-form "last_sync" string. A last_sync value that
// cannot be parsed is dropped rather than failing the whole document.
func (c *SyncConfig) UnmarshalJSON(b []byte) error {
	var raw struct {
		Enabled     *bool   `json:"enabled"`
		SyncEnabled *bool   `json:"sync_enabled"`
		LastSync    *string `json:"last_sync"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	*c = SyncConfig{}
	switch {
	case raw.Enabled != nil:
		c.Enabled = *raw.Enabled
	case raw.SyncEnabled != nil:
		c.Enabled = *raw.SyncEnabled
	}

	if raw.LastSync != nil && *raw.LastSync != "" {
		if t, err := ParseTimestamp(*raw.LastSync); err == nil {
			c.LastSync = &t
		}
	}

	return nil
}

// Clone returns a copy that shares no pointers with c.
func (c SyncConfig) Clone() SyncConfig {
	out := SyncConfig{Enabled: c.Enabled}
	if c.LastSync != nil {
		t := *c.LastSync
		out.LastSync = &t
	}
	return out
}
