// Package app implements the application layer for shelf.
package app

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App wires the registry, resolver, evaluator and stores into the operations
// exposed by the CLI.
type App struct {
	loader    ports.FragmentLoader
	resolver  ports.PackageResolver
	evaluator ports.ShellEvaluator
	lockStore ports.LockfileStore
	fetcher   ports.OutputFetcher
	launcher  ports.ShellLauncher
	watcher   ports.Watcher
	logger    ports.Logger

	fragments string
}

// New creates a new App instance.
func New(
	loader ports.FragmentLoader,
	resolver ports.PackageResolver,
	evaluator ports.ShellEvaluator,
	lockStore ports.LockfileStore,
	fetcher ports.OutputFetcher,
	launcher ports.ShellLauncher,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		loader:    loader,
		resolver:  resolver,
		evaluator: evaluator,
		lockStore: lockStore,
		fetcher:   fetcher,
		launcher:  launcher,
		watcher:   watcher,
		logger:    logger,
	}
}

// SetFragmentsDir overrides the fragment directory. The default is "deps".
func (a *App) SetFragmentsDir(dir string) {
	a.fragments = dir
}

func (a *App) fragmentsDir() string {
	if a.fragments != "" {
		return a.fragments
	}
	return domain.FragmentsDirName
}

// List returns the declared dependency names in sorted order.
func (a *App) List() ([]string, error) {
	registry, err := a.loader.Load(a.fragmentsDir())
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load fragments")
	}
	return registry.Names(), nil
}

// Show returns the declaration record for one dependency.
func (a *App) Show(name string) (domain.DependencySpec, error) {
	registry, err := a.loader.Load(a.fragmentsDir())
	if err != nil {
		return domain.DependencySpec{}, zerr.Wrap(err, "failed to load fragments")
	}
	return registry.Get(name)
}

// Lock resolves every declared package reference and writes the lockfile.
// Resolution fans out across references; the resulting lockfile depends only
// on the fragments and the resolver's answers, not on scheduling.
func (a *App) Lock(ctx context.Context) error {
	registry, err := a.loader.Load(a.fragmentsDir())
	if err != nil {
		return zerr.Wrap(err, "failed to load fragments")
	}

	lock := domain.NewLockfile()
	var mu sync.Mutex

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, ref := range registry.Refs() {
		g.Go(func() error {
			pkg, err := a.resolver.Resolve(groupCtx, ref)
			if err != nil {
				return zerr.With(err, "ref", ref.String())
			}
			mu.Lock()
			lock.Packages[ref.String()] = pkg
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "lock resolution failed")
	}

	if err := a.lockStore.Save(lock); err != nil {
		return zerr.Wrap(err, "failed to write lockfile")
	}

	a.logger.Info(fmt.Sprintf("locked %d packages for %d dependencies", len(lock.Packages), registry.Len()))
	return nil
}

// LockWatch runs Lock once, then re-locks whenever the fragment directory
// changes, until ctx is cancelled.
func (a *App) LockWatch(ctx context.Context) error {
	if err := a.Lock(ctx); err != nil {
		// Keep watching; a broken fragment will be fixed by the next save.
		a.logger.Error(err)
	}

	err := a.watcher.Watch(ctx, a.fragmentsDir(), func(paths []string) {
		a.logger.Info(fmt.Sprintf("fragments changed (%d files), re-locking", len(paths)))
		if err := a.Lock(ctx); err != nil {
			a.logger.Error(err)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Shell evaluates the dev shell of the named dependency and enters it.
func (a *App) Shell(ctx context.Context, name string) error {
	shell, err := a.pinnedShell(name)
	if err != nil {
		return err
	}

	env, err := a.evaluator.Eval(ctx, shell)
	if err != nil {
		return zerr.Wrap(err, "failed to evaluate dev shell")
	}

	return a.launcher.Enter(ctx, env)
}

// PrintEnv evaluates the dev shell of the named dependency and returns its
// environment without entering a shell.
func (a *App) PrintEnv(ctx context.Context, name string) ([]string, error) {
	shell, err := a.pinnedShell(name)
	if err != nil {
		return nil, err
	}
	return a.evaluator.Eval(ctx, shell)
}

// Fetch materializes the locked outputs of one dependency from the binary
// cache into the local store directory.
func (a *App) Fetch(ctx context.Context, name string) error {
	registry, err := a.loader.Load(a.fragmentsDir())
	if err != nil {
		return zerr.Wrap(err, "failed to load fragments")
	}
	spec, err := registry.Get(name)
	if err != nil {
		return err
	}
	lock, err := a.lockStore.Load()
	if err != nil {
		return err
	}
	system, err := domain.CurrentSystem()
	if err != nil {
		return err
	}

	for _, ref := range spec.Refs() {
		pkg, err := lock.Lookup(ref)
		if err != nil {
			return err
		}
		info, err := pkg.InfoForSystem(system)
		if err != nil {
			return err
		}
		out, ok := info.DefaultOutput()
		if !ok {
			missErr := zerr.With(domain.ErrFetchFailed, "ref", ref.String())
			return zerr.With(missErr, "reason", "no default output recorded, re-run 'shelf lock'")
		}
		if _, err := a.fetcher.Fetch(ctx, out.Path, domain.DefaultStorePath()); err != nil {
			return zerr.With(err, "ref", ref.String())
		}
	}

	return nil
}

// pinnedShell loads the registry and lockfile and pins the named dependency's
// dev shell for the current system.
func (a *App) pinnedShell(name string) (domain.PinnedShell, error) {
	registry, err := a.loader.Load(a.fragmentsDir())
	if err != nil {
		return domain.PinnedShell{}, zerr.Wrap(err, "failed to load fragments")
	}
	spec, err := registry.Get(name)
	if err != nil {
		return domain.PinnedShell{}, err
	}
	lock, err := a.lockStore.Load()
	if err != nil {
		return domain.PinnedShell{}, err
	}
	system, err := domain.CurrentSystem()
	if err != nil {
		return domain.PinnedShell{}, err
	}
	return domain.PinShell(spec.DevShell(), lock, system)
}
