// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store owns every byte franny-sync keeps on disk: the encrypted sync
// store, the local bookmark and history files and the sync settings file.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/franny-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EncryptedStore is an open, authenticated key-value store of sync documents.
// It is opened for a single operation and must be closed before the
// operation returns.
type EncryptedStore interface {
	// Get returns the document stored under key. The boolean is false when
	// the key is absent.
	Get(ctx context.Context, key string) (models.SyncDocument, bool, error)
	// Set durably stores doc under key, replacing any previous document.
	Set(ctx context.Context, key string, doc models.SyncDocument) error
	// Close releases the store and forgets the derived key.
	Close() error
}

// EncryptedStoreOpener opens the encrypted store at a fixed location.
type EncryptedStoreOpener interface {
	// Open authenticates passphrase against the store, creating the store on
	// first use. A wrong passphrase yields [ErrAuthentication].
	Open(ctx context.Context, passphrase string) (EncryptedStore, error)
	// Path is the store file location.
	Path() string
}

// CollectionStorage persists the local bookmark set and history log.
//
// Writers that must not block use StageBookmarks or StageHistory and call
// Flush later: only the latest staged value is written, so flushes that run
// out of order still leave the newest state on disk. Save drops anything
// staged before it.
type CollectionStorage interface {
	LoadBookmarks() models.BookmarkSet
	SaveBookmarks(bookmarks models.BookmarkSet) error
	LoadHistory() models.HistoryLog
	SaveHistory(history models.HistoryLog) error

	StageBookmarks(bookmarks models.BookmarkSet)
	StageHistory(history models.HistoryLog)
	Flush() error

	// ReadBookmarksFile reads a bookmark list from an arbitrary JSON file.
	ReadBookmarksFile(path string) (models.BookmarkSet, error)
	// WriteBookmarksFile writes bookmarks to an arbitrary JSON file.
	WriteBookmarksFile(path string, bookmarks models.BookmarkSet) error
}

// SyncConfigStorage persists [models.SyncConfig]. Implementations serialize
// their read-modify-write cycles.
type SyncConfigStorage interface {
	Load() models.SyncConfig
	Current() models.SyncConfig
	SetEnabled(enabled bool) (models.SyncConfig, error)
	MarkSynced(at time.Time) (models.SyncConfig, error)

	// StageEnabled changes the flag in memory only; Flush writes the latest
	// staged settings and is a no-op when nothing is staged.
	StageEnabled(enabled bool) models.SyncConfig
	Flush() error
}
