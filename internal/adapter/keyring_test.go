package adapter

import (
	"errors"
	"testing"

	"github.com/MKhiriev/franny-sync/internal/config"
	"github.com/MKhiriev/franny-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

// ── keyringBackend ────────────────────────────────────────────────────────────

func TestKeyringBackend_SetGetDelete(t *testing.T) {
	keyring.MockInit()
	b := NewKeyringBackend(logger.Nop())

	_, err := b.Get("franny_sync", "alice")
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	require.NoError(t, b.Set("franny_sync", "alice", "s3cret"))

	got, err := b.Get("franny_sync", "alice")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", got)

	require.NoError(t, b.Delete("franny_sync", "alice"))
	_, err = b.Get("franny_sync", "alice")
	assert.ErrorIs(t, err, ErrCredentialNotFound)

	assert.True(t, b.Available())
}

func TestKeyringBackend_BackendError(t *testing.T) {
	boom := errors.New("dbus is gone")
	keyring.MockInitWithError(boom)
	t.Cleanup(keyring.MockInit)

	b := NewKeyringBackend(logger.Nop())
	_, err := b.Get("franny_sync", "alice")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrCredentialNotFound)

	assert.ErrorIs(t, b.Set("franny_sync", "alice", "x"), boom)
}

// ── NewCredentialBackend ──────────────────────────────────────────────────────

func TestNewCredentialBackend_Selection(t *testing.T) {
	t.Run("disabled by config", func(t *testing.T) {
		keyring.MockInit()
		b := NewCredentialBackend(config.Credentials{Service: "franny_sync", Disabled: true}, logger.Nop())
		assert.False(t, b.Available())
	})

	t.Run("keyring answers", func(t *testing.T) {
		keyring.MockInit()
		b := NewCredentialBackend(config.Credentials{Service: "franny_sync"}, logger.Nop())
		assert.True(t, b.Available())
	})

	t.Run("keyring broken", func(t *testing.T) {
		keyring.MockInitWithError(errors.New("no secret service"))
		t.Cleanup(keyring.MockInit)
		b := NewCredentialBackend(config.Credentials{Service: "franny_sync"}, logger.Nop())
		assert.False(t, b.Available())
	})
}

// ── unavailableBackend ────────────────────────────────────────────────────────

func TestUnavailableBackend(t *testing.T) {
	b := NewUnavailableBackend()

	_, err := b.Get("s", "a")
	assert.ErrorIs(t, err, ErrCredentialNotFound)
	assert.ErrorIs(t, b.Set("s", "a", "x"), ErrCredentialBackendUnavailable)
	assert.ErrorIs(t, b.Delete("s", "a"), ErrCredentialNotFound)
	assert.False(t, b.Available())
}
