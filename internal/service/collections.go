package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/internal/store"
	"github.com/MKhiriev/franny-sync/models"
)

type collectionService struct {
	mu      sync.Mutex
	storage store.CollectionStorage
	logger  *logger.Logger
}

// NewCollectionService edits the local collections through storage. Every
// method is a load-modify-save cycle serialized by a mutex.
func NewCollectionService(storage store.CollectionStorage, log *logger.Logger) CollectionService {
	return &collectionService{storage: storage, logger: log}
}

func (c *collectionService) Bookmarks() models.BookmarkSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storage.LoadBookmarks()
}

func (c *collectionService) History() models.HistoryLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.storage.LoadHistory()
}

func (c *collectionService) ImportBookmarks(path string) (models.BookmarkSet, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	imported, err := c.storage.ReadBookmarksFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("import bookmarks: %w", err)
	}

	current := c.storage.LoadBookmarks()
	merged := MergeBookmarks(current, cleanURLs(imported))
	if err := c.storage.SaveBookmarks(merged); err != nil {
		return nil, 0, fmt.Errorf("save imported bookmarks: %w", err)
	}

	added := len(merged) - len(current)
	c.logger.Info().Str("path", path).Int("added", added).Msg("imported bookmarks")
	return merged, added, nil
}

func (c *collectionService) ExportBookmarks(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storage.WriteBookmarksFile(path, c.storage.LoadBookmarks()); err != nil {
		return fmt.Errorf("export bookmarks: %w", err)
	}
	return nil
}

func (c *collectionService) AddBookmark(url string) (models.BookmarkSet, bool, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, false, ErrEmptyURL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	bookmarks := c.storage.LoadBookmarks()
	if bookmarks.Contains(url) {
		return bookmarks, false, nil
	}

	bookmarks = append(bookmarks, url)
	if err := c.storage.SaveBookmarks(bookmarks); err != nil {
		return nil, false, fmt.Errorf("save bookmarks: %w", err)
	}
	return bookmarks, true, nil
}

func (c *collectionService) RemoveBookmark(url string) (models.BookmarkSet, bool, error) {
	url = strings.TrimSpace(url)

	c.mu.Lock()
	defer c.mu.Unlock()

	bookmarks := c.storage.LoadBookmarks()
	i := slices.Index(bookmarks, url)
	if i < 0 {
		return bookmarks, false, nil
	}

	bookmarks = slices.Delete(bookmarks, i, i+1)
	if err := c.storage.SaveBookmarks(bookmarks); err != nil {
		return nil, false, fmt.Errorf("save bookmarks: %w", err)
	}
	return bookmarks, true, nil
}

// RecordVisit appends url to the history, dropping the oldest entries past
// [models.HistoryCap].
func (c *collectionService) RecordVisit(url string) (models.HistoryLog, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	history := append(c.storage.LoadHistory(), url).Tail(models.HistoryCap)
	if err := c.storage.SaveHistory(history); err != nil {
		return nil, fmt.Errorf("save history: %w", err)
	}
	return history, nil
}

func (c *collectionService) ClearHistory() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.storage.SaveHistory(models.HistoryLog{}); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func cleanURLs(urls models.BookmarkSet) models.BookmarkSet {
	out := make(models.BookmarkSet, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
