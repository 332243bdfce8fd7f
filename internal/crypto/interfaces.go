package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain owns all cryptography of the encrypted sync store. It knows
// nothing about files or databases; it only derives keys and seals blobs.
//
// Scheme:
//
//	salt = GenerateSalt()                    stored in clear next to the data
//	key  = DeriveKey(passphrase, salt)       Argon2id, lives only in memory
//	blob = Seal(key, plaintext, aad)         nonce || AES-256-GCM ciphertext
type KeyChain interface {
	// GenerateSalt returns 16 random bytes. The salt is not secret; it makes
	// equal passphrases yield different keys across stores.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches passphrase into a 256-bit key with Argon2id.
	DeriveKey(passphrase string, salt []byte) []byte

	// Seal encrypts plaintext with key. aad is authenticated but not
	// encrypted; Open must be given the same aad.
	Seal(key, plaintext, aad []byte) ([]byte, error)

	// Open reverses Seal. A wrong key, a different aad or any tampering
	// yields an error wrapping [ErrDecrypt].
	Open(key, blob, aad []byte) ([]byte, error)

	// SealJSON marshals v to JSON and seals it.
	SealJSON(key []byte, v any, aad []byte) ([]byte, error)

	// OpenJSON opens blob and unmarshals the plaintext into target.
	OpenJSON(key, blob, aad []byte, target any) error
}
