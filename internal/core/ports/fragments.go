// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/shelf/internal/core/domain"

// FragmentLoader loads dependency fragments into a registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=fragments.go -destination=mocks/mock_fragments.go -package=mocks
type FragmentLoader interface {
	// Load reads every fragment under dir and aggregates them.
	// Duplicate dependency names and malformed fragments are load errors.
	Load(dir string) (*domain.Registry, error)
}
