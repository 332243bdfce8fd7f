// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	metaTable      = "store_meta"
	documentsTable = "sync_documents"

	metaKeySalt     = "kdf_salt"
	metaKeyVerifier = "verifier"
)

func buildSelectMetaQuery(key string) (string, []any, error) {
	query, args, err := sq.
		Select("value").
		From(metaTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertMetaQuery(key string, value []byte) (string, []any, error) {
	query, args, err := sq.
		Insert(metaTable).
		Columns("key", "value").
		Values(key, value).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectDocumentQuery(key string) (string, []any, error) {
	query, args, err := sq.
		Select("payload").
		From(documentsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpsertDocumentQuery(key string, payload []byte, updatedAt string) (string, []any, error) {
	query, args, err := sq.
		Insert(documentsTable).
		Columns("key", "payload", "updated_at").
		Values(key, payload, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
