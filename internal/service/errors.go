package service

import "errors"

// Failure taxonomy of a sync run. Each sentinel maps to one
// [models.ErrorKind] on the delivered result.
var (
	// ErrMissingPassphrase is returned when no passphrase could be resolved
	// from the explicit value, the credential backend or the UI field.
	ErrMissingPassphrase = errors.New("no sync passphrase provided")

	// ErrStoreUnavailable wraps any failure to open or authenticate the
	// encrypted store.
	ErrStoreUnavailable = errors.New("sync store unavailable")

	// ErrStoreReadWrite wraps a failed document read or write.
	ErrStoreReadWrite = errors.New("sync store read/write failed")

	// ErrMergeWrite wraps a failure to persist merged collections locally.
	ErrMergeWrite = errors.New("failed to write merged data")

	// ErrSyncLocked is returned when another process holds the sync lock.
	ErrSyncLocked = errors.New("another sync is in progress")

	// ErrUnknownDirection is returned for a direction outside test, push,
	// pull and sync.
	ErrUnknownDirection = errors.New("unknown sync direction")
)

// ErrEmptyURL is returned when a bookmark or visit has no URL.
var ErrEmptyURL = errors.New("url is empty")
