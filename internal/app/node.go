package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shelf/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shelf/internal/adapters/lockstore" //nolint:depguard // Wired in app layer
	"go.trai.ch/shelf/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/shelf/internal/adapters/narstore"  //nolint:depguard // Wired in app layer
	"go.trai.ch/shelf/internal/adapters/nix"       //nolint:depguard // Wired in app layer
	"go.trai.ch/shelf/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/shelf/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/shelf/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components the CLI layer
// needs access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			nix.ResolverNodeID,
			nix.EvaluatorNodeID,
			lockstore.NodeID,
			narstore.NodeID,
			shell.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    application,
				Logger: log,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.FragmentLoader](ctx)
	if err != nil {
		return nil, err
	}
	resolver, err := graft.Dep[ports.PackageResolver](ctx)
	if err != nil {
		return nil, err
	}
	evaluator, err := graft.Dep[ports.ShellEvaluator](ctx)
	if err != nil {
		return nil, err
	}
	lockStore, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}
	fetcher, err := graft.Dep[ports.OutputFetcher](ctx)
	if err != nil {
		return nil, err
	}
	launcher, err := graft.Dep[ports.ShellLauncher](ctx)
	if err != nil {
		return nil, err
	}
	fsWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, evaluator, lockStore, fetcher, launcher, fsWatcher, log), nil
}
