// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shelf/internal/adapters/config"
	_ "go.trai.ch/shelf/internal/adapters/lockstore"
	_ "go.trai.ch/shelf/internal/adapters/logger"
	_ "go.trai.ch/shelf/internal/adapters/narstore"
	_ "go.trai.ch/shelf/internal/adapters/nix"
	_ "go.trai.ch/shelf/internal/adapters/shell"
	_ "go.trai.ch/shelf/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/shelf/internal/app"
)
