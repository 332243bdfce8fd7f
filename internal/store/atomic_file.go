// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/franny-sync/internal/logger"
)

// AtomicFile reads and writes JSON files so that a reader only ever sees the
// old or the new content, never a torn write.
type AtomicFile struct {
	logger *logger.Logger

	// beforeRename runs after the temporary file is complete and before it
	// replaces the destination. Tests use it to simulate a crash.
	beforeRename func(tmpPath string) error
}

// NewAtomicFile returns an [AtomicFile] logging through log.
func NewAtomicFile(log *logger.Logger) *AtomicFile {
	return &AtomicFile{logger: log}
}

// WriteJSON serializes v as indented JSON and atomically replaces path with
// it. The temporary file lives in the destination directory so the final
// rename never crosses filesystems. Files are created with mode 0600.
func (a *AtomicFile) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	// fail keeps the original error first; a failed cleanup is joined to it.
	fail := func(err error) error {
		_ = tmp.Close()
		if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			a.logger.Warn().Err(rmErr).Str("path", tmpPath).Msg("failed to remove temp file")
			return errors.Join(err, fmt.Errorf("remove temp file: %w", rmErr))
		}
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(fmt.Errorf("write %s: %w", tmpPath, err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync %s: %w", tmpPath, err))
	}
	if err := tmp.Close(); err != nil {
		return fail(fmt.Errorf("close %s: %w", tmpPath, err))
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return fail(fmt.Errorf("chmod %s: %w", tmpPath, err))
	}
	if a.beforeRename != nil {
		if err := a.beforeRename(tmpPath); err != nil {
			return fail(err)
		}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fail(fmt.Errorf("replace %s: %w", path, err))
	}

	if err := syncDir(dir); err != nil {
		a.logger.Debug().Err(err).Str("dir", dir).Msg("directory fsync failed")
	}

	return nil
}

// ReadJSON decodes path into v. A missing, empty or unparsable file leaves v
// untouched and reports false; the caller keeps its defaults.
func (a *AtomicFile) ReadJSON(path string, v any) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.logger.Debug().Str("path", path).Msg("file does not exist, using defaults")
		} else {
			a.logger.Warn().Err(err).Str("path", path).Msg("failed to read file, using defaults")
		}
		return false
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		a.logger.Debug().Str("path", path).Msg("file is empty, using defaults")
		return false
	}
	if !json.Valid(data) {
		a.logger.Warn().Str("path", path).Msg("file is not valid JSON, using defaults")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("file has unexpected shape, using defaults")
		return false
	}

	return true
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
