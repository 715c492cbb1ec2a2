// Package store is the persistent key-value space shared by all flows:
// session token, onboarding checkpoint, and local preferences. Backends are
// selected once at startup and consumed uniformly everywhere else.
package store

import (
	"errors"

	"github.com/gerdlab/refluxtrack/internal/constants"
)

var (
	// ErrNotFound is returned when a key is absent from the store
	ErrNotFound = errors.New("key not found in store")
	// ErrUnavailable is returned when the backing storage cannot be reached
	ErrUnavailable = errors.New("persistent store is not available")
)

// Store abstracts the platform-backed key-value storage.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// CheckpointKey returns the onboarding checkpoint key scoped to username,
// or the global fallback key when no username is known.
func CheckpointKey(username string) string {
	if username == "" {
		return constants.KeyOnboardingScreen
	}
	return constants.KeyOnboardingScreen + "_" + username
}
