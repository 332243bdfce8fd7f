package service

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/MKhiriev/franny-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── MergeBookmarks ────────────────────────────────────────────────────────────

func TestMergeBookmarks(t *testing.T) {
	tests := []struct {
		name   string
		local  models.BookmarkSet
		remote models.BookmarkSet
		want   models.BookmarkSet
	}{
		{name: "overlap", local: models.BookmarkSet{"a", "b"}, remote: models.BookmarkSet{"b", "c"}, want: models.BookmarkSet{"a", "b", "c"}},
		{name: "idempotent", local: models.BookmarkSet{"a", "b"}, remote: models.BookmarkSet{"a", "b"}, want: models.BookmarkSet{"a", "b"}},
		{name: "empty local", local: nil, remote: models.BookmarkSet{"x"}, want: models.BookmarkSet{"x"}},
		{name: "empty remote", local: models.BookmarkSet{"x"}, remote: nil, want: models.BookmarkSet{"x"}},
		{name: "both empty", local: nil, remote: nil, want: models.BookmarkSet{}},
		{name: "remote only duplicates", local: models.BookmarkSet{"a"}, remote: models.BookmarkSet{"b", "b", "a", "b"}, want: models.BookmarkSet{"a", "b"}},
		{name: "local order kept", local: models.BookmarkSet{"c", "a"}, remote: models.BookmarkSet{"a", "b", "c"}, want: models.BookmarkSet{"c", "a", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeBookmarks(tt.local, tt.remote))
		})
	}
}

func TestMergeBookmarks_SupersetWithoutDuplicates(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		local := randomURLs(r, r.Intn(20), 15)
		remote := randomURLs(r, r.Intn(20), 15)

		merged := MergeBookmarks(local, remote)

		seen := map[string]bool{}
		for _, u := range merged {
			require.False(t, seen[u], "duplicate %q", u)
			seen[u] = true
		}
		for _, u := range append(local.Clone(), remote...) {
			require.True(t, seen[u], "lost %q", u)
		}
	}
}

func TestMergeBookmarks_DoesNotAliasInputs(t *testing.T) {
	local := models.BookmarkSet{"a"}
	merged := MergeBookmarks(local, nil)
	merged[0] = "changed"
	assert.Equal(t, "a", local[0])
}

// ── MergeHistory ──────────────────────────────────────────────────────────────

func TestMergeHistory(t *testing.T) {
	tests := []struct {
		name   string
		local  models.HistoryLog
		remote models.HistoryLog
		limit  int
		want   models.HistoryLog
	}{
		{name: "literal example", local: models.HistoryLog{"x", "y"}, remote: models.HistoryLog{"y", "z"}, limit: 10, want: models.HistoryLog{"x", "y", "z"}},
		{name: "last occurrence wins", local: models.HistoryLog{"a", "b", "a"}, remote: models.HistoryLog{"b"}, limit: 10, want: models.HistoryLog{"a", "b"}},
		{name: "remote moves duplicate forward", local: models.HistoryLog{"a", "b"}, remote: models.HistoryLog{"a"}, limit: 10, want: models.HistoryLog{"b", "a"}},
		{name: "empty local", local: nil, remote: models.HistoryLog{"p", "q"}, limit: 10, want: models.HistoryLog{"p", "q"}},
		{name: "empty remote", local: models.HistoryLog{"p", "q"}, remote: nil, limit: 10, want: models.HistoryLog{"p", "q"}},
		{name: "both empty", limit: 10, want: models.HistoryLog{}},
		{name: "remote only duplicates", local: nil, remote: models.HistoryLog{"r", "r", "r"}, limit: 10, want: models.HistoryLog{"r"}},
		{name: "zero limit", local: models.HistoryLog{"a"}, remote: models.HistoryLog{"b"}, limit: 0, want: models.HistoryLog{}},
		{name: "keeps newest", local: models.HistoryLog{"1", "2", "3"}, remote: models.HistoryLog{"4", "5"}, limit: 2, want: models.HistoryLog{"4", "5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeHistory(tt.local, tt.remote, tt.limit))
		})
	}
}

func TestMergeHistory_EmptyLocalTruncatesRemote(t *testing.T) {
	remote := make(models.HistoryLog, 0, 25)
	for i := 0; i < 25; i++ {
		remote = append(remote, fmt.Sprintf("u%d", i))
	}

	got := MergeHistory(nil, remote, 10)
	assert.Equal(t, remote[15:], got)
}

func TestMergeHistory_NeverExceedsCap(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 300; i++ {
		local := models.HistoryLog(randomURLs(r, r.Intn(60), 40))
		remote := models.HistoryLog(randomURLs(r, r.Intn(60), 40))
		limit := r.Intn(30)

		got := MergeHistory(local, remote, limit)
		require.LessOrEqual(t, len(got), limit)

		seen := map[string]bool{}
		for _, u := range got {
			require.False(t, seen[u], "duplicate %q", u)
			seen[u] = true
		}
	}
}

func TestMergeHistory_DefaultCap(t *testing.T) {
	local := make(models.HistoryLog, 0, models.HistoryCap+200)
	for i := 0; i < models.HistoryCap+200; i++ {
		local = append(local, fmt.Sprintf("https://site/%d", i))
	}

	got := MergeHistory(local, nil, models.HistoryCap)
	require.Len(t, got, models.HistoryCap)
	assert.Equal(t, local[len(local)-1], got[len(got)-1])
	assert.Equal(t, local[200], got[0])
}

func randomURLs(r *rand.Rand, n, alphabet int) models.BookmarkSet {
	out := make(models.BookmarkSet, n)
	for i := range out {
		out[i] = fmt.Sprintf("https://%d.example", r.Intn(alphabet+1))
	}
	return out
}
