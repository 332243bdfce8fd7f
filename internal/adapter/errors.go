// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrCredentialNotFound is returned when no secret is stored for the
	// requested service and account.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrCredentialBackendUnavailable is returned by writes when no secure
	// credential store is reachable on this machine.
	ErrCredentialBackendUnavailable = errors.New("credential backend unavailable")
)
