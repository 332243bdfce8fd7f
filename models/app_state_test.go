package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppState_SnapshotIsIndependent(t *testing.T) {
	s := AppState{
		Bookmarks:       BookmarkSet{"a"},
		History:         HistoryLog{"x"},
		PassphraseInput: "typed",
	}

	snap := s.Snapshot()
	s.Bookmarks = append(s.Bookmarks, "b")
	s.History[0] = "changed"

	assert.Equal(t, BookmarkSet{"a"}, snap.Bookmarks)
	assert.Equal(t, HistoryLog{"x"}, snap.History)
	assert.Equal(t, "typed", snap.PassphraseInput)
}

func TestAppState_AdoptSuccess(t *testing.T) {
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	s := AppState{Bookmarks: BookmarkSet{"a"}, History: HistoryLog{"x"}}

	r := Succeeded(DirectionPull, "Sync completed.")
	r.Bookmarks = BookmarkSet{"a", "b"}
	r.History = HistoryLog{"x", "y"}
	r.LastSync = &at
	s.Adopt(r)

	assert.Equal(t, BookmarkSet{"a", "b"}, s.Bookmarks)
	assert.Equal(t, HistoryLog{"x", "y"}, s.History)
	require.NotNil(t, s.Config.LastSync)
	assert.Equal(t, at, *s.Config.LastSync)
	require.NotNil(t, s.LastResult)
	assert.Equal(t, "Sync completed.", s.LastResult.Message)
}

func TestAppState_AdoptPushKeepsCollections(t *testing.T) {
	at := time.Now()
	s := AppState{Bookmarks: BookmarkSet{"a"}}

	r := Succeeded(DirectionPush, "Sync completed.")
	r.LastSync = &at
	s.Adopt(r)

	assert.Equal(t, BookmarkSet{"a"}, s.Bookmarks)
	assert.NotNil(t, s.Config.LastSync)
}

func TestAppState_AdoptFailureChangesNothing(t *testing.T) {
	s := AppState{Bookmarks: BookmarkSet{"a"}}

	r := Failed(DirectionPull, KindStoreUnavailable, "Failed to open sync store: boom")
	r.Bookmarks = BookmarkSet{}
	s.Adopt(r)

	assert.Equal(t, BookmarkSet{"a"}, s.Bookmarks)
	assert.Nil(t, s.Config.LastSync)
	require.NotNil(t, s.LastResult)
	assert.False(t, s.LastResult.Success)
}
