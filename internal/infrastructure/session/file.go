// Package session persists the Hunter API bearer token between
// invocations, the process-local analog of the mobile app's preference
// store.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore keeps the token in a single file. Set writes through a temp
// file and rename so a reader never observes a torn value. There is no
// expiry: the token lives until Clear or a storage wipe.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store at path. The file may not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath resolves the per-user token location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hunter", "session"), nil
}

// Get returns the stored token, or an empty string when anonymous.
func (s *FileStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Set replaces the stored token.
func (s *FileStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(token+"\n"), 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Clear removes the stored token. Clearing an already-anonymous store is
// not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
