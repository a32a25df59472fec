// Package localstore is a file-backed key-value store with the same shape
// the browser build kept in localStorage: JSON values under string keys,
// read and written synchronously. The whole store lives in a single JSON
// file; no schema version tag is persisted, so a shape change silently
// invalidates old data.
package localstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	// KeyCurrentUser holds the last signed-in user's profile.
	KeyCurrentUser = "skyways_current_user"
	// KeyUsers holds the list of account records.
	KeyUsers = "skyways_users"
	// bookingsKeyPrefix scopes booking lists per user.
	bookingsKeyPrefix = "skyways_bookings_"
)

// BookingsKey returns the per-user bookings key.
func BookingsKey(userID string) string {
	return bookingsKeyPrefix + userID
}

// Store is a mutex-guarded key-value store persisted to a JSON file.
// Reads and writes from concurrent requests are serialized; concurrent
// processes sharing the file are not coordinated.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads the store file, creating parent directories as needed.
// A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("failed to parse store file %s: %w", path, err)
		}
	}

	return s, nil
}

// Get unmarshals the value under key into v. The second return reports
// whether the key was present.
func (s *Store) Get(key string, v any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("failed to decode value for %s: %w", key, err)
	}
	return true, nil
}

// Set stores v under key and flushes the file.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode value for %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.flush()
}

// Delete removes key and flushes the file. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.flush()
}

// flush writes the store file atomically. Callers hold s.mu.
func (s *Store) flush() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
