package nix

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shelf/internal/adapters/logger"
	"go.trai.ch/shelf/internal/core/ports"
)

const (
	ResolverNodeID  graft.ID = "adapter.nix.resolver"
	EvaluatorNodeID graft.ID = "adapter.nix.evaluator"
)

func init() {
	graft.Register(graft.Node[ports.PackageResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PackageResolver, error) {
			resolver, err := NewResolver()
			if err != nil {
				return nil, err
			}
			return resolver, nil
		},
	})

	graft.Register(graft.Node[ports.ShellEvaluator]{
		ID:        EvaluatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ShellEvaluator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewEvaluator(log), nil
		},
	})
}
