package cli

import (
	"time"

	"github.com/MKhiriev/franny-sync/models"
)

type jsonSyncResult struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Direction string `json:"direction"`
	Kind      string `json:"kind,omitempty"`
	JobID     string `json:"job_id"`
	Bookmarks *int   `json:"bookmarks,omitempty"`
	History   *int   `json:"history,omitempty"`
	LastSync  string `json:"last_sync,omitempty"`
}

func toJSONSyncResult(r models.SyncResult) jsonSyncResult {
	out := jsonSyncResult{
		Success:   r.Success,
		Message:   r.Message,
		Direction: string(r.Direction),
		Kind:      string(r.Kind),
		JobID:     r.JobID,
	}
	if r.Bookmarks != nil || r.History != nil {
		b, h := len(r.Bookmarks), len(r.History)
		out.Bookmarks, out.History = &b, &h
	}
	if r.LastSync != nil {
		out.LastSync = r.LastSync.UTC().Format(time.RFC3339)
	}
	return out
}

type jsonStatus struct {
	Enabled   bool   `json:"enabled"`
	LastSync  string `json:"last_sync,omitempty"`
	Store     string `json:"store"`
	Profile   string `json:"profile"`
	Keyring   bool   `json:"keyring"`
	Bookmarks int    `json:"bookmarks"`
	History   int    `json:"history"`
}

type jsonAction struct {
	OK     bool   `json:"ok"`
	Action string `json:"action"`
	URL    string `json:"url,omitempty"`
	Path   string `json:"path,omitempty"`
	Count  *int   `json:"count,omitempty"`
}

type jsonBuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
