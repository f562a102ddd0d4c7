package ports

import "context"

// ShellLauncher drops the user into an interactive shell.
//
//go:generate go run go.uber.org/mock/mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type ShellLauncher interface {
	// Enter runs an interactive shell with env layered over the host
	// environment and blocks until the shell exits.
	Enter(ctx context.Context, env []string) error
}
