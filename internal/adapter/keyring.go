// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/franny-sync/internal/config"
	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/zalando/go-keyring"
)

// probeAccount is looked up once at startup only to see whether the OS
// keyring answers at all.
const probeAccount = "franny_probe"

// keyringBackend persists secrets in the OS keyring
// (macOS Keychain, Windows Credential Manager, or Linux Secret Service).
type keyringBackend struct {
	logger *logger.Logger
}

// NewCredentialBackend selects the credential backend for this process.
//
// When cfg.Disabled is set, or the keyring fails the probe with anything other
// than "not found", the unavailable null object is returned and the service
// layer falls back to the UI-supplied passphrase.
func NewCredentialBackend(cfg config.Credentials, log *logger.Logger) CredentialBackend {
	if cfg.Disabled {
		log.Info().Msg("keyring disabled by configuration")
		return NewUnavailableBackend()
	}

	_, err := keyring.Get(cfg.Service, probeAccount)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		log.Warn().Err(err).Msg("OS keyring is not reachable, passphrase will not be remembered")
		return NewUnavailableBackend()
	}

	return &keyringBackend{logger: log}
}

// NewKeyringBackend returns the keyring implementation without probing.
func NewKeyringBackend(log *logger.Logger) CredentialBackend {
	return &keyringBackend{logger: log}
}

func (k *keyringBackend) Get(service, account string) (string, error) {
	secret, err := keyring.Get(service, account)
	if err != nil {
		return "", mapKeyringError(err)
	}
	return secret, nil
}

func (k *keyringBackend) Set(service, account, secret string) error {
	if err := keyring.Set(service, account, secret); err != nil {
		return fmt.Errorf("failed to save secret to keyring: %w", mapKeyringError(err))
	}
	return nil
}

func (k *keyringBackend) Delete(service, account string) error {
	if err := keyring.Delete(service, account); err != nil {
		return mapKeyringError(err)
	}
	return nil
}

func (k *keyringBackend) Available() bool { return true }

func mapKeyringError(err error) error {
	switch {
	case errors.Is(err, keyring.ErrNotFound):
		return ErrCredentialNotFound
	case errors.Is(err, keyring.ErrUnsupportedPlatform):
		return fmt.Errorf("%w: %w", ErrCredentialBackendUnavailable, err)
	default:
		return fmt.Errorf("keyring: %w", err)
	}
}
