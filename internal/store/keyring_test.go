package store

import (
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestKeyringSetAndGet(t *testing.T) {
	// Use mock keyring for testing
	gokeyring.MockInit()

	s := NewKeyringStore()
	if err := s.Set("authToken", "tok-123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get("authToken")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "tok-123" {
		t.Errorf("Get() = %q, want %q", got, "tok-123")
	}
}

func TestKeyringSetEmptyKey(t *testing.T) {
	gokeyring.MockInit()

	s := NewKeyringStore()
	if err := s.Set("", "value"); err == nil {
		t.Error("Set(\"\") should return an error")
	}
}

func TestKeyringGetNotFound(t *testing.T) {
	gokeyring.MockInit()

	s := NewKeyringStore()
	if _, err := s.Get("never-stored"); err != ErrNotFound {
		t.Errorf("Get() error = %v, want %v", err, ErrNotFound)
	}
}

func TestKeyringDelete(t *testing.T) {
	gokeyring.MockInit()

	s := NewKeyringStore()
	if err := s.Set("username", "alex"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Delete("username"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get("username"); err != ErrNotFound {
		t.Errorf("Get() after Delete() error = %v, want %v", err, ErrNotFound)
	}
	if err := s.Delete("username"); err != ErrNotFound {
		t.Errorf("Delete() of missing key error = %v, want %v", err, ErrNotFound)
	}
}

func TestCheckpointKey(t *testing.T) {
	tests := []struct {
		name     string
		username string
		want     string
	}{
		{"scoped", "alex", "onboardingScreen_alex"},
		{"global fallback", "", "onboardingScreen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckpointKey(tt.username); got != tt.want {
				t.Errorf("CheckpointKey(%q) = %q, want %q", tt.username, got, tt.want)
			}
		})
	}
}
