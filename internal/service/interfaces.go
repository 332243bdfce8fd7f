// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the sync domain logic: passphrase resolution, the
// merge algorithms, the sync engine and the local collection operations.
package service

import (
	"context"

	"github.com/MKhiriev/franny-sync/models"
)

// CredentialResolver finds the passphrase for a sync run.
type CredentialResolver interface {
	// Resolve returns the first non-empty of explicit, the stored secret and
	// uiValue, or [ErrMissingPassphrase].
	Resolve(explicit, uiValue string) (string, error)

	// Store remembers passphrase in the credential backend. Failure only
	// means the passphrase must be typed again next time.
	Store(passphrase string) error

	// Remember stores explicit, or uiValue when nothing is stored yet, after
	// a run that used it succeeded. It does nothing when the backend does
	// not persist.
	Remember(explicit, uiValue string) error

	// Forget removes the stored passphrase.
	Forget() error

	// Remembers reports whether stored passphrases survive restarts.
	Remembers() bool
}

// SyncRequest is everything one sync run needs. The collections are
// snapshots owned by the run.
type SyncRequest struct {
	JobID        string
	Direction    models.Direction
	Passphrase   string
	UIPassphrase string
	Bookmarks    models.BookmarkSet
	History      models.HistoryLog
}

// SyncEngine runs test, push, pull and sync against the encrypted store.
type SyncEngine interface {
	// PerformSync never panics and never returns an error; every outcome,
	// including an internal fault, is a [models.SyncResult].
	PerformSync(ctx context.Context, req SyncRequest) models.SyncResult
}

// CollectionService edits the local bookmark and history files.
type CollectionService interface {
	Bookmarks() models.BookmarkSet
	History() models.HistoryLog

	// ImportBookmarks merges the bookmarks in path into the local set and
	// returns the new set with the number of URLs added.
	ImportBookmarks(path string) (models.BookmarkSet, int, error)
	ExportBookmarks(path string) error

	AddBookmark(url string) (models.BookmarkSet, bool, error)
	RemoveBookmark(url string) (models.BookmarkSet, bool, error)
	RecordVisit(url string) (models.HistoryLog, error)
	ClearHistory() error
}
