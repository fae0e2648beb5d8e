package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// TokenStore persists the bearer token as a JSON file, the CLI's durable
// storage. Nothing else is persisted locally; all resume state is
// re-fetched from the backend.
type TokenStore struct {
	path string
}

type tokenFile struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"savedAt"`
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

func (s *TokenStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	data, err := json.MarshalIndent(tokenFile{Token: token, SavedAt: time.Now()}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// Load returns the stored token, empty when none exists.
func (s *TokenStore) Load() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return ""
	}
	return tf.Token
}

func (s *TokenStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}
