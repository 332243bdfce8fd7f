// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/franny-sync/internal/crypto"
	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/MKhiriev/franny-sync/models"
)

// verifierPlaintext is sealed under the derived key when a store is created.
// Unsealing it on open proves the passphrase without touching any document.
var verifierPlaintext = []byte("franny-sync store v1")

var verifierAAD = []byte(metaKeyVerifier)

type encryptedStoreOpener struct {
	path     string
	keyChain crypto.KeyChain
	logger   *logger.Logger
}

// NewEncryptedStoreOpener returns an opener for the store file at path.
func NewEncryptedStoreOpener(path string, keyChain crypto.KeyChain, log *logger.Logger) EncryptedStoreOpener {
	return &encryptedStoreOpener{path: path, keyChain: keyChain, logger: log}
}

func (o *encryptedStoreOpener) Path() string { return o.path }

// Open connects to the SQLite file, migrates it and authenticates passphrase.
// A fresh store gets a random salt and a verifier sealed under the new key.
func (o *encryptedStoreOpener) Open(ctx context.Context, passphrase string) (EncryptedStore, error) {
	log := logger.FromContext(ctx)

	db, err := NewConnectSQLite(ctx, o.path, o.logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating sync store: %w", classifySQLiteError(err))
	}

	key, err := o.unlock(ctx, db, passphrase)
	if err != nil {
		db.Close()
		log.Debug().Err(err).Str("path", o.path).Msg("sync store unlock failed")
		return nil, err
	}

	return &encryptedStore{db: db, key: key, keyChain: o.keyChain}, nil
}

func (o *encryptedStoreOpener) unlock(ctx context.Context, db *DB, passphrase string) ([]byte, error) {
	salt, saltFound, err := readMeta(ctx, db, metaKeySalt)
	if err != nil {
		return nil, err
	}
	verifier, verifierFound, err := readMeta(ctx, db, metaKeyVerifier)
	if err != nil {
		return nil, err
	}

	switch {
	case !saltFound && !verifierFound:
		return o.initialize(ctx, db, passphrase)
	case !saltFound || !verifierFound || len(salt) != crypto.SaltSize:
		return nil, fmt.Errorf("%w: incomplete key metadata", ErrStoreCorrupt)
	}

	key := o.keyChain.DeriveKey(passphrase, salt)
	plain, err := o.keyChain.Open(key, verifier, verifierAAD)
	if err != nil {
		if errors.Is(err, crypto.ErrDecrypt) {
			return nil, ErrAuthentication
		}
		return nil, err
	}
	if subtle.ConstantTimeCompare(plain, verifierPlaintext) != 1 {
		return nil, ErrAuthentication
	}

	return key, nil
}

// initialize writes the salt and verifier of a new store in one transaction.
func (o *encryptedStoreOpener) initialize(ctx context.Context, db *DB, passphrase string) ([]byte, error) {
	salt, err := o.keyChain.GenerateSalt()
	if err != nil {
		return nil, err
	}
	key := o.keyChain.DeriveKey(passphrase, salt)
	verifier, err := o.keyChain.Seal(key, verifierPlaintext, verifierAAD)
	if err != nil {
		return nil, fmt.Errorf("sealing verifier: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for metaKey, value := range map[string][]byte{metaKeySalt: salt, metaKeyVerifier: verifier} {
		query, args, err := buildInsertMetaQuery(metaKey, value)
		if err != nil {
			return nil, err
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: writing %s: %w", ErrExecutingQuery, metaKey, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	o.logger.Info().Str("path", o.path).Msg("created new sync store")
	return key, nil
}

func readMeta(ctx context.Context, db *DB, key string) ([]byte, bool, error) {
	query, args, err := buildSelectMetaQuery(key)
	if err != nil {
		return nil, false, err
	}

	var value []byte
	err = db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("%w: reading %s: %w", ErrScanningRow, key, classifySQLiteError(err))
	}
	return value, true, nil
}

// encryptedStore is an unlocked store. Documents are sealed JSON with the
// document key as additional data, so a payload copied under another key
// fails authentication.
type encryptedStore struct {
	mu       sync.Mutex
	db       *DB
	key      []byte
	keyChain crypto.KeyChain
}

func (s *encryptedStore) Get(ctx context.Context, key string) (models.SyncDocument, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return models.SyncDocument{}, false, ErrStoreClosed
	}

	query, args, err := buildSelectDocumentQuery(key)
	if err != nil {
		return models.SyncDocument{}, false, err
	}

	var payload []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SyncDocument{}, false, nil
	case err != nil:
		return models.SyncDocument{}, false, fmt.Errorf("%w: reading %q: %w", ErrScanningRow, key, err)
	}

	var doc models.SyncDocument
	if err := s.keyChain.OpenJSON(s.key, payload, []byte(key), &doc); err != nil {
		return models.SyncDocument{}, false, fmt.Errorf("%w: document %q: %w", ErrStoreCorrupt, key, err)
	}
	doc.Key = key

	return doc, true, nil
}

func (s *encryptedStore) Set(ctx context.Context, key string, doc models.SyncDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrStoreClosed
	}

	doc.Key = key
	payload, err := s.keyChain.SealJSON(s.key, doc, []byte(key))
	if err != nil {
		return fmt.Errorf("sealing %q: %w", key, err)
	}

	query, args, err := buildUpsertDocumentQuery(key, payload, doc.Timestamp)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrExecutingQuery, key, err)
	}

	return nil
}

// Close is idempotent.
func (s *encryptedStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	for i := range s.key {
		s.key[i] = 0
	}
	err := s.db.Close()
	s.db = nil
	return err
}
