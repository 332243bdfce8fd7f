// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions over the platform services franny-sync
// talks to outside its own files.
//
// The primary abstraction is [CredentialBackend], which decouples the service
// layer from the OS secret store. The package ships a keyring implementation
// backed by github.com/zalando/go-keyring and a null object used when no
// secret store is reachable. [NewCredentialBackend] picks one of them once at
// startup, so callers never branch on availability.
//
// Keyring-specific failures are mapped to the sentinel errors in errors.go so
// callers can use [errors.Is] regardless of the platform backend.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_backend_mock.go -package=mock

// CredentialBackend stores secrets under a (service, account) pair.
type CredentialBackend interface {
	// Get returns the secret stored for service and account, or
	// [ErrCredentialNotFound] when nothing is stored.
	Get(service, account string) (string, error)

	// Set stores secret for service and account, replacing any previous value.
	Set(service, account, secret string) error

	// Delete removes the secret. Deleting a missing secret returns
	// [ErrCredentialNotFound].
	Delete(service, account string) error

	// Available reports whether a real secret store is behind this backend.
	Available() bool
}
