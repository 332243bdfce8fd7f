package cli

import "errors"

var (
	ErrSyncFailed      = errors.New("sync failed")
	ErrEmptyPassphrase = errors.New("passphrase is empty")
	ErrNoKeyring       = errors.New("no secure credential backend available")
	ErrInvalidMinutes  = errors.New("interval must be at least one minute")
)
