// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Well-known document keys inside the encrypted sync store.
const (
	// DocumentKeyBookmarks holds the pushed [BookmarkSet].
	DocumentKeyBookmarks = "bookmarks"
	// DocumentKeyHistory holds the most recent part of the pushed [HistoryLog].
	DocumentKeyHistory = "history"
	// DocumentKeySyncTest is the sentinel key used only by the "test" direction
	// to verify a write/read round trip.
	DocumentKeySyncTest = "franny_sync_test"
)

const (
	// HistoryCap bounds the merged history log.
	HistoryCap = 1000
	// PushHistoryLimit is how many of the most recent history entries a push
	// sends to the store.
	PushHistoryLimit = 500
)

// BookmarkSet is an ordered sequence of unique bookmark URLs. Insertion
// order is display order.
type BookmarkSet []string

// HistoryLog is a chronological sequence of visited URLs, oldest first.
type HistoryLog []string

// Clone returns an independent copy so a snapshot can be handed to a worker.
func (b BookmarkSet) Clone() BookmarkSet {
	if b == nil {
		return nil
	}
	out := make(BookmarkSet, len(b))
	copy(out, b)
	return out
}

// Contains reports whether url is already bookmarked.
func (b BookmarkSet) Contains(url string) bool {
	for _, u := range b {
		if u == url {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the log.
func (h HistoryLog) Clone() HistoryLog {
	if h == nil {
		return nil
	}
	out := make(HistoryLog, len(h))
	copy(out, h)
	return out
}

// Tail returns the last n entries of the log (the whole log when it is
// shorter than n).
func (h HistoryLog) Tail(n int) HistoryLog {
	if n <= 0 {
		return HistoryLog{}
	}
	if len(h) <= n {
		return h.Clone()
	}
	return h[len(h)-n:].Clone()
}

// SyncDocument is the unit stored in the encrypted store.
//
// Timestamp is an ISO-8601 (RFC 3339, UTC) string. The sentinel document
// carries only a timestamp; collection documents carry the URLs in Data.
type SyncDocument struct {
	Key       string   `json:"key"`
	Timestamp string   `json:"timestamp"`
	Data      []string `json:"data,omitempty"`
}

// FormatTimestamp renders t the way sync documents store it.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// naiveTimestampLayout matches ISO-8601 timestamps without a zone, as written
// by older profiles. They are read as UTC.
const naiveTimestampLayout = "2006-01-02T15:04:05.999999999"

// ParseTimestamp parses a timestamp produced by [FormatTimestamp]. Zone-less
// ISO-8601 values are accepted and taken as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err == nil {
		return t, nil
	}
	if naive, naiveErr := time.ParseInLocation(naiveTimestampLayout, s, time.UTC); naiveErr == nil {
		return naive, nil
	}
	return time.Time{}, err
}

// Direction selects which sync operation to run.
type Direction string

const (
	// DirectionTest writes and reads back a sentinel document.
	DirectionTest Direction = "test"
	// DirectionPush writes local collections to the store.
	DirectionPush Direction = "push"
	// DirectionPull merges store collections into local ones.
	DirectionPull Direction = "pull"
	// DirectionSync pushes, then pulls.
	DirectionSync Direction = "sync"
)

// ParseDirection validates a user supplied direction name.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionTest, DirectionPush, DirectionPull, DirectionSync:
		return d, nil
	default:
		return "", fmt.Errorf("unknown sync direction %q (use test, push, pull or sync)", s)
	}
}

// ErrorKind classifies a failed [SyncResult].
type ErrorKind string

const (
	KindNone                ErrorKind = ""
	KindMissingPassphrase   ErrorKind = "MissingPassphrase"
	KindStoreUnavailable    ErrorKind = "StoreUnavailable"
	KindStoreReadWriteError ErrorKind = "StoreReadWriteError"
	KindMergeWriteError     ErrorKind = "MergeWriteError"
	KindSyncInProgress      ErrorKind = "SyncInProgress"
	KindUnexpectedError     ErrorKind = "UnexpectedError"
)

// SyncResult is the only outcome a sync operation ever produces.
//
// Message is shown verbatim by status sinks. Bookmarks and History are set
// only after a successful pull (or sync) and hold the merged collections the
// control goroutine should adopt. LastSync is set whenever the run succeeded.
type SyncResult struct {
	Success   bool
	Message   string
	Direction Direction
	Kind      ErrorKind
	JobID     string

	Bookmarks BookmarkSet
	History   HistoryLog
	LastSync  *time.Time
}

// Failed builds an unsuccessful result of the given kind.
func Failed(direction Direction, kind ErrorKind, message string) SyncResult {
	return SyncResult{Direction: direction, Kind: kind, Message: message}
}

// Succeeded builds a successful result.
func Succeeded(direction Direction, message string) SyncResult {
	return SyncResult{Success: true, Direction: direction, Message: message}
}
