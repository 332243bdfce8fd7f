// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/MKhiriev/franny-sync/models"
)

type collectionStorage struct {
	bookmarksPath string
	historyPath   string
	file          *AtomicFile

	// writeMu orders writes of both files; mu guards the staged values and
	// is never held across file I/O.
	writeMu          sync.Mutex
	mu               sync.Mutex
	stagedBookmarks  models.BookmarkSet
	stagedHistory    models.HistoryLog
	bookmarksPending bool
	historyPending   bool
}

// NewCollectionStorage stores bookmarks and history as JSON arrays at the
// given paths.
func NewCollectionStorage(bookmarksPath, historyPath string, file *AtomicFile) CollectionStorage {
	return &collectionStorage{
		bookmarksPath: bookmarksPath,
		historyPath:   historyPath,
		file:          file,
	}
}

func (c *collectionStorage) LoadBookmarks() models.BookmarkSet {
	var bookmarks models.BookmarkSet
	if !c.file.ReadJSON(c.bookmarksPath, &bookmarks) || bookmarks == nil {
		return models.BookmarkSet{}
	}
	return bookmarks
}

// SaveBookmarks writes bookmarks now and drops any value staged before it.
func (c *collectionStorage) SaveBookmarks(bookmarks models.BookmarkSet) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.stagedBookmarks, c.bookmarksPending = nil, false
	c.mu.Unlock()

	return c.file.WriteJSON(c.bookmarksPath, nonNil(bookmarks))
}

func (c *collectionStorage) LoadHistory() models.HistoryLog {
	var history models.HistoryLog
	if !c.file.ReadJSON(c.historyPath, &history) || history == nil {
		return models.HistoryLog{}
	}
	return history
}

// SaveHistory writes history now and drops any value staged before it.
func (c *collectionStorage) SaveHistory(history models.HistoryLog) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	c.stagedHistory, c.historyPending = nil, false
	c.mu.Unlock()

	return c.file.WriteJSON(c.historyPath, nonNil(history))
}

func (c *collectionStorage) StageBookmarks(bookmarks models.BookmarkSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stagedBookmarks, c.bookmarksPending = bookmarks.Clone(), true
}

func (c *collectionStorage) StageHistory(history models.HistoryLog) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stagedHistory, c.historyPending = history.Clone(), true
}

// Flush writes whatever is staged. A value staged again while the write is
// running is left for the next Flush.
func (c *collectionStorage) Flush() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	c.mu.Lock()
	bookmarks, writeBookmarks := c.stagedBookmarks, c.bookmarksPending
	history, writeHistory := c.stagedHistory, c.historyPending
	c.stagedBookmarks, c.bookmarksPending = nil, false
	c.stagedHistory, c.historyPending = nil, false
	c.mu.Unlock()

	var errs []error
	if writeBookmarks {
		if err := c.file.WriteJSON(c.bookmarksPath, nonNil(bookmarks)); err != nil {
			// put it back unless something newer was staged meanwhile
			c.mu.Lock()
			if !c.bookmarksPending {
				c.stagedBookmarks, c.bookmarksPending = bookmarks, true
			}
			c.mu.Unlock()
			errs = append(errs, err)
		}
	}
	if writeHistory {
		if err := c.file.WriteJSON(c.historyPath, nonNil(history)); err != nil {
			c.mu.Lock()
			if !c.historyPending {
				c.stagedHistory, c.historyPending = history, true
			}
			c.mu.Unlock()
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// nonNil makes an empty collection serialize as [] rather than null.
func nonNil[S ~[]string](s S) S {
	if s == nil {
		return S{}
	}
	return s
}
