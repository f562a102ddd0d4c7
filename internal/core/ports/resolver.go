package ports

import (
	"context"

	"go.trai.ch/shelf/internal/core/domain"
)

// PackageResolver resolves a package reference to pinned nixpkgs snapshots.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type PackageResolver interface {
	// Resolve resolves a reference (e.g., "openssl@^3") to per-system package
	// metadata. It should check the local cache before querying upstream.
	Resolve(ctx context.Context, ref domain.PackageRef) (domain.ResolvedPackage, error)
}
