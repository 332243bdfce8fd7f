package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty encrypted store path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a profile directory that could not be resolved).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, a sync interval below one minute).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidCredentialConfigs indicates an empty keyring service or
	// account name.
	ErrInvalidCredentialConfigs = errors.New("invalid credentials configuration")
)
