package ports

import (
	"context"

	"go.trai.ch/shelf/internal/core/domain"
)

// ShellEvaluator materializes a pinned dev shell into environment variables.
//
// Implementations are responsible for:
//   - Rendering the shell's pinned inputs into an evaluator expression
//   - Invoking the external evaluator
//   - Caching the resulting environment by shell ID
//
//go:generate go run go.uber.org/mock/mockgen -source=evaluator.go -destination=mocks/mock_evaluator.go -package=mocks
type ShellEvaluator interface {
	// Eval evaluates the shell and returns environment variables as sorted
	// "KEY=VALUE" strings suitable for process execution.
	Eval(ctx context.Context, shell domain.PinnedShell) ([]string, error)
}
