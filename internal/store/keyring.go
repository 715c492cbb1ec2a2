package store

import (
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/gerdlab/refluxtrack/internal/constants"
)

// KeyringStore keeps values in the OS keyring under the app's service name.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a Store backed by the OS keyring.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: constants.AppName}
}

func (s *KeyringStore) Get(key string) (string, error) {
	val, err := keyring.Get(s.service, key)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return val, nil
}

func (s *KeyringStore) Set(key, value string) error {
	if key == "" {
		return fmt.Errorf("store key cannot be empty")
	}
	if err := keyring.Set(s.service, key, value); err != nil {
		return fmt.Errorf("failed to store %q in keyring: %w", key, err)
	}
	return nil
}

func (s *KeyringStore) Delete(key string) error {
	err := keyring.Delete(s.service, key)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete %q from keyring: %w", key, err)
	}
	return nil
}

// KeyringAvailable checks if the OS keyring is usable on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func KeyringAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring answered, it is just empty
	return err == nil || err == keyring.ErrNotFound
}
