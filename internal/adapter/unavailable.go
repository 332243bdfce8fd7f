package adapter

// unavailableBackend stands in when no secret store exists. Reads find
// nothing and writes fail, so callers need no special casing.
type unavailableBackend struct{}

// NewUnavailableBackend returns the null [CredentialBackend].
func NewUnavailableBackend() CredentialBackend {
	return unavailableBackend{}
}

func (unavailableBackend) Get(string, string) (string, error) {
	return "", ErrCredentialNotFound
}

func (unavailableBackend) Set(string, string, string) error {
	return ErrCredentialBackendUnavailable
}

func (unavailableBackend) Delete(string, string) error {
	return ErrCredentialNotFound
}

func (unavailableBackend) Available() bool { return false }
