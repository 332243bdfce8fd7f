package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/franny-sync/internal/logger"
)

// sqliteParams make every committed write durable before Exec returns and
// let a second opener wait briefly instead of failing on a lock.
const sqliteParams = "?_sync=FULL&_busy_timeout=5000"

// NewConnectSQLite opens (creating if needed) the SQLite file at path and
// verifies the connection.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("error creating store directory")
		return nil, fmt.Errorf("error creating store directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path+sqliteParams)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// one connection keeps the store a single-writer file
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, classifySQLiteError(err)
	}

	// the header is only read by the first real query
	var tables int
	if err = conn.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master").Scan(&tables); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("path", path).Msg("store file is not readable as a database")
		conn.Close()
		return nil, classifySQLiteError(err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	if err := os.Chmod(path, 0o600); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not restrict store file permissions")
	}

	return &DB{DB: conn, logger: log}, nil
}

// classifySQLiteError maps "this file is not a usable database" failures to
// [ErrStoreCorrupt] and leaves everything else wrapped as is.
func classifySQLiteError(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrNotADB, sqlite3.ErrCorrupt:
			return fmt.Errorf("%w: %w", ErrStoreCorrupt, err)
		}
	}
	return err
}
