// Package localstore implements the keyed blob store backing all persisted
// state, plus the repositories layered on top of it. Each key maps to one
// JSON file in the data directory; values are rewritten whole, and a missing
// or unparseable file reads as absent.
package localstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
)

// Store is a synchronous get/set/remove contract over keyed blobs.
type Store struct {
	dir string
	mu  sync.Mutex
}

// Open ensures the data directory exists and returns a Store over it.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get decodes the blob at key into v. It returns false when the blob is
// absent or corrupt; that is recovery, not an error.
func (s *Store) Get(key string, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	return sonic.Unmarshal(data, v) == nil
}

// Set encodes v and replaces the blob at key atomically (write to a temp
// file, then rename).
func (s *Store) Set(key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("localstore: encode %s: %w", key, err)
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("localstore: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("localstore: replace %s: %w", key, err)
	}
	return nil
}

// Remove deletes the blob at key. Removing an absent key is a no-op.
func (s *Store) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: remove %s: %w", key, err)
	}
	return nil
}

// Ping verifies the data directory is writable. Used by the readiness probe.
func (s *Store) Ping() error {
	f, err := os.CreateTemp(s.dir, ".ping-*")
	if err != nil {
		return fmt.Errorf("localstore: data dir not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
