package models

import "time"

// AppState is the mutable application state shared between the control
// surface and the sync engine. It is owned by a single control goroutine;
// workers only ever see the snapshot returned by [AppState.Snapshot].
type AppState struct {
	Bookmarks BookmarkSet
	History   HistoryLog
	Config    SyncConfig

	// PassphraseInput mirrors the passphrase text field of the UI. It is
	// the last resort when resolving a passphrase and is never persisted.
	PassphraseInput string

	// AutoSyncInterval is the period of the unattended sync trigger.
	AutoSyncInterval time.Duration

	// LastResult is the most recent result delivered to the control goroutine.
	LastResult *SyncResult
}

// StateSnapshot is a read-only copy of the collections handed to a worker.
type StateSnapshot struct {
	Bookmarks       BookmarkSet
	History         HistoryLog
	PassphraseInput string
}

// Snapshot copies the collections so a worker can read them while the
// control goroutine keeps mutating the originals.
func (s *AppState) Snapshot() StateSnapshot {
	return StateSnapshot{
		Bookmarks:       s.Bookmarks.Clone(),
		History:         s.History.Clone(),
		PassphraseInput: s.PassphraseInput,
	}
}

// Adopt applies a delivered result: merged collections replace the
// in-memory ones and a successful run advances LastSync.
func (s *AppState) Adopt(result SyncResult) {
	r := result
	s.LastResult = &r

	if !result.Success {
		return
	}
	if result.Bookmarks != nil {
		s.Bookmarks = result.Bookmarks.Clone()
	}
	if result.History != nil {
		s.History = result.History.Clone()
	}
	if result.LastSync != nil {
		t := *result.LastSync
		s.Config.LastSync = &t
	}
}
