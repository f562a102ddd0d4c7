package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shelf/internal/adapters/logger"
	"go.trai.ch/shelf/internal/core/ports"
)

const NodeID graft.ID = "adapter.shell_launcher"

func init() {
	graft.Register(graft.Node[ports.ShellLauncher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ShellLauncher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
