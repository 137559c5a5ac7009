// Package flagstore persists small boolean flags in a JSON file next to the
// database. The flags live outside the record store on purpose: the seed
// marker and the logged-in flag must survive any table clear or re-seed.
package flagstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const fileName = "flags.json"

type Store struct {
	path string

	mu    sync.Mutex
	flags map[string]bool
}

// Open loads the flag file under dataDir, creating the directory if needed.
// A missing file is an empty flag set, not an error.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	s := &Store{
		path:  filepath.Join(dataDir, fileName),
		flags: make(map[string]bool),
	}
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read flag file: %w", err)
	}
	if err := json.Unmarshal(data, &s.flags); err != nil {
		return nil, fmt.Errorf("parse flag file: %w", err)
	}
	return s, nil
}

// Get returns the flag value; unset flags read as false.
func (s *Store) Get(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flags[key]
}

func (s *Store) Set(key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flags[key] = value
	return s.save()
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.flags[key]; !ok {
		return nil
	}
	delete(s.flags, key)
	return s.save()
}

// save writes the whole flag set through a temp file and rename, so a crash
// mid-write never leaves a truncated file behind.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.flags, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write flag file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace flag file: %w", err)
	}
	return nil
}
