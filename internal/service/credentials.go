// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/franny-sync/internal/adapter"
	"github.com/MKhiriev/franny-sync/internal/logger"
)

type credentialResolver struct {
	backend adapter.CredentialBackend
	service string
	account string
	logger  *logger.Logger
}

// NewCredentialResolver resolves passphrases against backend under the given
// service and account.
func NewCredentialResolver(backend adapter.CredentialBackend, service, account string, log *logger.Logger) CredentialResolver {
	return &credentialResolver{
		backend: backend,
		service: service,
		account: account,
		logger:  log,
	}
}

func (c *credentialResolver) Resolve(explicit, uiValue string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	secret, err := c.backend.Get(c.service, c.account)
	switch {
	case err == nil && secret != "":
		return secret, nil
	case err != nil && !errors.Is(err, adapter.ErrCredentialNotFound):
		c.logger.Debug().Err(err).Msg("credential backend lookup failed, falling back to UI value")
	}

	if uiValue != "" {
		return uiValue, nil
	}

	return "", ErrMissingPassphrase
}

func (c *credentialResolver) Store(passphrase string) error {
	if passphrase == "" {
		return nil
	}
	return c.backend.Set(c.service, c.account, passphrase)
}

func (c *credentialResolver) Remember(explicit, uiValue string) error {
	if explicit == "" && uiValue == "" || !c.Remembers() {
		return nil
	}
	if explicit != "" {
		return c.Store(explicit)
	}

	if secret, err := c.backend.Get(c.service, c.account); err == nil && secret != "" {
		// the stored secret took precedence over the typed one
		return nil
	}
	return c.Store(uiValue)
}

func (c *credentialResolver) Forget() error {
	err := c.backend.Delete(c.service, c.account)
	if errors.Is(err, adapter.ErrCredentialNotFound) {
		return nil
	}
	return err
}

func (c *credentialResolver) Remembers() bool {
	return c.backend.Available()
}
