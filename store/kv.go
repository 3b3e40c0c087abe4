package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// KV is a minimal local key-value medium for persisted snapshots. It is
// shared only within one process; concurrent writers are last-writer-wins
// with no coordination.
type KV interface {
	// Get returns the stored value for key, or ok=false when the key has
	// never been written.
	Get(key string) (value []byte, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
}

// FileKV stores each key as a JSON file under a base directory.
type FileKV struct {
	baseDir string
}

func NewFileKV(baseDir string) *FileKV {
	return &FileKV{baseDir: baseDir}
}

func (s *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return data, true, nil
}

func (s *FileKV) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("store: mkdir: %w", err)
	}

	// write-then-rename so readers never observe a torn value
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("store: rename %s: %w", key, err)
	}
	return nil
}

func (s *FileKV) path(key string) string {
	return filepath.Join(s.baseDir, key+".json")
}
