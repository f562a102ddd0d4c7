// Package lockstore persists the lockfile as a flat JSON file.
package lockstore

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.LockfileStore using a JSON file.
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a Store backed by the default lockfile path.
func NewStore() *Store {
	return NewStoreAt(domain.LockFileName)
}

// NewStoreAt creates a Store backed by the file at path.
func NewStoreAt(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads the lockfile. Returns domain.ErrLockfileMissing if it does not
// exist yet.
func (s *Store) Load() (*domain.Lockfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrLockfileMissing, "path", s.path)
		}
		return nil, zerr.Wrap(err, "failed to read lockfile")
	}

	var lock domain.Lockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, zerr.Wrap(err, "failed to parse lockfile")
	}
	if lock.Packages == nil {
		lock.Packages = make(map[string]domain.ResolvedPackage)
	}
	return &lock, nil
}

// Save writes the lockfile atomically. Serialization is deterministic: JSON
// object keys are emitted sorted, so equal lockfiles are byte-identical.
func (s *Store) Save(lock *domain.Lockfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(lock, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal lockfile")
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmpFile, err := os.CreateTemp(dir, ".shelf-lock-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create lockfile temp file")
	}
	tmpName := tmpFile.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return zerr.Wrap(err, "failed to write lockfile")
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.Wrap(err, "failed to close lockfile temp file")
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.Wrap(err, "failed to set lockfile permissions")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return zerr.Wrap(err, "failed to move lockfile into place")
	}
	return nil
}

var _ ports.LockfileStore = (*Store)(nil)
