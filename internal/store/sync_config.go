// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/franny-sync/models"
)

type syncConfigStorage struct {
	// writeMu orders file writes; mu guards current and dirty and is never
	// held across file I/O.
	writeMu sync.Mutex
	mu      sync.Mutex

	path    string
	file    *AtomicFile
	current models.SyncConfig
	dirty   bool
}

// NewSyncConfigStorage returns the settings store for path. Call Load once at
// startup.
func NewSyncConfigStorage(path string, file *AtomicFile) SyncConfigStorage {
	return &syncConfigStorage{path: path, file: file}
}

// Load reads the settings file, falling back to defaults when it is missing
// or corrupt.
func (s *syncConfigStorage) Load() models.SyncConfig {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var cfg models.SyncConfig
	if !s.file.ReadJSON(s.path, &cfg) {
		cfg = models.SyncConfig{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = cfg
	s.dirty = false
	return cfg.Clone()
}

func (s *syncConfigStorage) Current() models.SyncConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *syncConfigStorage) StageEnabled(enabled bool) models.SyncConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Enabled = enabled
	s.dirty = true
	return s.current.Clone()
}

func (s *syncConfigStorage) Flush() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	if !s.dirty {
		s.mu.Unlock()
		return nil
	}
	cfg := s.current.Clone()
	s.dirty = false
	s.mu.Unlock()

	return s.write(cfg)
}

func (s *syncConfigStorage) SetEnabled(enabled bool) (models.SyncConfig, error) {
	return s.update(func(cfg *models.SyncConfig) { cfg.Enabled = enabled })
}

func (s *syncConfigStorage) MarkSynced(at time.Time) (models.SyncConfig, error) {
	at = at.UTC()
	return s.update(func(cfg *models.SyncConfig) { cfg.LastSync = &at })
}

// update is a read-modify-write of the file. Unless a staged change is still
// waiting for Flush, the file wins over the copy loaded at startup, so a
// change written by another process is not reverted. On write failure the
// in-memory value still moves forward and the next successful write
// persists it.
func (s *syncConfigStorage) update(fn func(cfg *models.SyncConfig)) (models.SyncConfig, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	var onDisk models.SyncConfig
	fresh := s.file.ReadJSON(s.path, &onDisk)

	s.mu.Lock()
	if fresh && !s.dirty {
		s.current = onDisk
	}
	fn(&s.current)
	cfg := s.current.Clone()
	s.dirty = false
	s.mu.Unlock()

	return cfg, s.write(cfg)
}

// write must be called with writeMu held.
func (s *syncConfigStorage) write(cfg models.SyncConfig) error {
	if err := s.file.WriteJSON(s.path, cfg); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return nil
}
