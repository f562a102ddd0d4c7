package ports

import "go.trai.ch/shelf/internal/core/domain"

// LockfileStore persists the lockfile.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockfileStore interface {
	// Load reads the lockfile. Returns domain.ErrLockfileMissing if absent.
	Load() (*domain.Lockfile, error)

	// Save writes the lockfile. Identical lockfiles serialize byte-identically.
	Save(lock *domain.Lockfile) error
}
