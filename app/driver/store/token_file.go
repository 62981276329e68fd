package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const tokenFileName = "session_token"

// TokenFile is the identity adapter's private persistence for the provider
// session token. It is internal to the adapter: nothing outside the identity
// layer reads the raw file.
type TokenFile struct {
	mu   sync.Mutex
	path string
}

// NewTokenFile creates a token file rooted at dir.
func NewTokenFile(dir string) *TokenFile {
	return &TokenFile{path: filepath.Join(dir, tokenFileName)}
}

// Save durably writes the token.
func (t *TokenFile) Save(token string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(t.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

// Load returns the persisted token, or "" when none exists.
func (t *TokenFile) Load() (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Clear removes the persisted token.
func (t *TokenFile) Clear() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing token: %w", err)
	}
	return nil
}
