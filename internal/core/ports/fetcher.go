package ports

import "context"

// OutputFetcher downloads package outputs from a Nix binary cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type OutputFetcher interface {
	// Fetch downloads and unpacks the output at storePath into destDir.
	// Returns the local path of the materialized output.
	Fetch(ctx context.Context, storePath, destDir string) (string, error)
}
