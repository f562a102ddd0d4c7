package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shelf/internal/adapters/logger"
	"go.trai.ch/shelf/internal/core/ports"
)

const NodeID graft.ID = "adapter.fragment_loader"

func init() {
	graft.Register(graft.Node[ports.FragmentLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.FragmentLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
