// Package store persists the client's local session state: the render-ahead
// profile cache and the identity adapter's private token file. Both live in
// the user data directory as single fixed-name entries.
package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ihelperdrone/droneops/app/domain"
)

const profileFileName = "profile.json"

// FileStore implements port.SessionStore on a single JSON file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

// NewFileStore creates a store rooted at dir. The directory is created on the
// first write.
func NewFileStore(dir string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   filepath.Join(dir, profileFileName),
		logger: logger.With("component", "session_store"),
	}
}

// Save overwrites the cached profile wholesale.
func (s *FileStore) Save(profile *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing profile: %w", err)
	}

	s.logger.Debug("profile persisted", "email", profile.Email)
	return nil
}

// Load returns the cached profile, or (nil, nil) when no entry exists.
func (s *FileStore) Load() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}

	var profile domain.User
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	return &profile, nil
}

// Clear removes the cached profile. Clearing an absent entry is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing profile: %w", err)
	}
	return nil
}
