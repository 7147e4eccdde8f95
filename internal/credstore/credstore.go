// Package credstore persists authentication credentials across runs.
//
// The store is a passive durable mirror of the in-memory session: two
// independent entries (the bearer token and the serialized user record) under
// the state directory. Only the session store writes to it.
package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/maartenv/kampeer/internal/api"
)

const (
	tokenFile = "auth_token"
	userFile  = "user.json"
)

// Store is a file-backed credential store rooted at a state directory.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the state directory backing the store.
func (s *Store) Dir() string {
	return s.dir
}

// Token returns the stored bearer credential, if any.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil || len(data) == 0 {
		return "", false
	}
	return string(data), true
}

// User returns the stored user record, if any.
func (s *Store) User() (*api.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil, false
	}

	var user api.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false
	}
	return &user, true
}

// SetToken writes the bearer credential entry.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeToken(token)
}

// SetUser writes the user entry.
func (s *Store) SetUser(user *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeUser(user)
}

// Set writes both entries together, the way every successful login, register,
// and session-set does.
func (s *Store) Set(token string, user *api.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeToken(token); err != nil {
		return err
	}
	return s.writeUser(user)
}

// Clear erases both entries. Safe to call when nothing is stored.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *Store) writeToken(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600)
}

func (s *Store) writeUser(user *api.User) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}

	// No user record means no entry; a later Recover refetches the profile.
	if user == nil {
		if err := os.Remove(filepath.Join(s.dir, userFile)); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}

	data, err := json.MarshalIndent(user, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), data, 0o600)
}
