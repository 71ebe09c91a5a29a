package ledger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore implements Store backed by a single JSON file. Saves are atomic:
// tmp file → fsync → rename, so a crash mid-write never corrupts the ledger.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path. The parent directory
// is created if missing; the file itself may not exist yet.
func NewFileStore(path string) (*FileStore, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return nil, fmt.Errorf("ledger: mkdir: %w", err)
	}
	return &FileStore{path: abs}, nil
}

// Load reads the ledger file. A missing file means first use, not an error.
func (f *FileStore) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger: read %s: %w", f.path, err)
	}
	return data, nil
}

// Save atomically replaces the ledger file.
func (f *FileStore) Save(data []byte) error {
	dir := filepath.Dir(f.path)

	tmp, err := os.CreateTemp(dir, ".gid-ledger-*")
	if err != nil {
		return fmt.Errorf("ledger: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("ledger: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("ledger: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("ledger: close temp: %w", err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("ledger: rename: %w", err)
	}
	success = true
	return nil
}
