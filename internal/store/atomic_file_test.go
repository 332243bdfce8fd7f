package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── WriteJSON ─────────────────────────────────────────────────────────────────

func TestAtomicFile_WriteThenRead(t *testing.T) {
	af := NewAtomicFile(logger.Nop())
	path := filepath.Join(t.TempDir(), "nested", "dir", "bookmarks.json")

	require.NoError(t, af.WriteJSON(path, []string{"a", "b"}))

	var got []string
	require.True(t, af.ReadJSON(path, &got))
	assert.Equal(t, []string{"a", "b"}, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestAtomicFile_InterruptedWriteKeepsOldContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")
	af := NewAtomicFile(logger.Nop())
	require.NoError(t, af.WriteJSON(path, []string{"old"}))

	crash := errors.New("power loss")
	af.beforeRename = func(string) error { return crash }

	err := af.WriteJSON(path, []string{"new"})
	require.ErrorIs(t, err, crash)

	var got []string
	require.True(t, af.ReadJSON(path, &got))
	assert.Equal(t, []string{"old"}, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must be cleaned up")
}

func TestAtomicFile_UnencodableValue(t *testing.T) {
	af := NewAtomicFile(logger.Nop())
	err := af.WriteJSON(filepath.Join(t.TempDir(), "x.json"), make(chan int))
	assert.Error(t, err)
}

// ── ReadJSON ──────────────────────────────────────────────────────────────────

func TestAtomicFile_ReadJSONFallbacks(t *testing.T) {
	dir := t.TempDir()
	af := NewAtomicFile(logger.Nop())

	write := func(name, content string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
		return p
	}

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: filepath.Join(dir, "missing.json")},
		{name: "empty", path: write("empty.json", "")},
		{name: "whitespace", path: write("ws.json", "  \n ")},
		{name: "truncated", path: write("trunc.json", `["a", "b`)},
		{name: "wrong shape", path: write("shape.json", `{"a": 1}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{"default"}
			assert.False(t, af.ReadJSON(tt.path, &got))
			assert.Equal(t, []string{"default"}, got)
		})
	}
}
