// Package store persists a small JSON object of user settings. Every write
// goes straight to disk; a missing or unreadable file simply leaves the
// in-memory values in place.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"sync"
)

// Store is a key/value map backed by a JSON file.
type Store struct {
	path string

	mu   sync.Mutex
	data map[string]any
}

// New returns a store for path seeded with a copy of defaults. Nothing is
// read until Load is called.
func New(path string, defaults map[string]any) *Store {
	data := make(map[string]any, len(defaults))
	maps.Copy(data, defaults)
	return &Store{path: path, data: data}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory values with the file's contents. A missing or
// corrupt file keeps the current values.
func (s *Store) Load() {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var data map[string]any
	if err := json.Unmarshal(buf, &data); err != nil || data == nil {
		return
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()
}

// Get returns the value stored under key, or fallback when there is none.
func (s *Store) Get(key string, fallback any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.data[key]; ok {
		return v
	}
	return fallback
}

// Value returns the value stored under key converted to T, or fallback when
// the key is missing or cannot be converted. Values decoded from JSON are
// converted through their JSON form, so numbers read back as any numeric T.
func Value[T any](s *Store, key string, fallback T) T {
	v := s.Get(key, nil)
	if v == nil {
		return fallback
	}
	if t, ok := v.(T); ok {
		return t
	}
	buf, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	var t T
	if err := json.Unmarshal(buf, &t); err != nil {
		return fallback
	}
	return t
}

// Set stores value under key and saves the store.
func (s *Store) Set(key string, value any) error {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
	return s.Save()
}

// Update stores every entry of values and saves the store once.
func (s *Store) Update(values map[string]any) error {
	s.mu.Lock()
	maps.Copy(s.data, values)
	s.mu.Unlock()
	return s.Save()
}

// Save writes the store to its file, creating parent directories as needed.
func (s *Store) Save() error {
	s.mu.Lock()
	buf, err := json.MarshalIndent(s.data, "", "    ")
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(s.path, buf, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// Wipe clears every value and removes the file. A missing file is not an
// error.
func (s *Store) Wipe() error {
	s.mu.Lock()
	s.data = map[string]any{}
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}
