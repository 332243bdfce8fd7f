package store

import "errors"

// Sentinel errors of the encrypted sync store. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrAuthentication is returned by Open when the passphrase does not
	// unlock the store.
	ErrAuthentication = errors.New("sync store authentication failed")

	// ErrStoreCorrupt is returned when the store file is not a database,
	// its metadata cannot be decoded or a document fails authentication.
	ErrStoreCorrupt = errors.New("sync store is corrupt")

	// ErrStoreClosed is returned by Get and Set after Close.
	ErrStoreClosed = errors.New("sync store is closed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// store methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
