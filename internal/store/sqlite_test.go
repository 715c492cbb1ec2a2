package store

import (
	"testing"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteStore(dir)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSetAndGet(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Set("authToken", "tok-456"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := s.Get("authToken")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "tok-456" {
		t.Errorf("Get() = %q, want %q", got, "tok-456")
	}
}

func TestSQLiteSetOverwrites(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Set("username", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Set("username", "second"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}

	got, err := s.Get("username")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}
}

func TestSQLiteSetEmptyKey(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Set("", "value"); err == nil {
		t.Error("Set(\"\") should return an error")
	}
}

func TestSQLiteGetNotFound(t *testing.T) {
	s := newTestSQLiteStore(t)

	if _, err := s.Get("missing"); err != ErrNotFound {
		t.Errorf("Get() error = %v, want %v", err, ErrNotFound)
	}
}

func TestSQLiteDelete(t *testing.T) {
	s := newTestSQLiteStore(t)

	if err := s.Set("deviceId", "abc"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Delete("deviceId"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get("deviceId"); err != ErrNotFound {
		t.Errorf("Get() after Delete() error = %v, want %v", err, ErrNotFound)
	}
	if err := s.Delete("deviceId"); err != ErrNotFound {
		t.Errorf("Delete() of missing key error = %v, want %v", err, ErrNotFound)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewSQLiteStore(dir)
	if err != nil {
		t.Fatalf("NewSQLiteStore() error = %v", err)
	}
	if err := s.Set("authToken", "persisted"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := NewSQLiteStore(dir)
	if err != nil {
		t.Fatalf("NewSQLiteStore() reopen error = %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Get("authToken")
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got != "persisted" {
		t.Errorf("Get() after reopen = %q, want %q", got, "persisted")
	}
}
