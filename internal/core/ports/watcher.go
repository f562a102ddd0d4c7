package ports

import "context"

// Watcher observes a fragment directory for changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Watch blocks and invokes onChange with debounced batches of changed
	// paths until ctx is cancelled.
	Watch(ctx context.Context, dir string, onChange func(paths []string)) error
}
