// Package shell provides the interactive shell launcher adapter.
package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

// Launcher implements ports.ShellLauncher using os/exec.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a new Launcher.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Enter runs the user's shell with env layered over the host environment and
// blocks until it exits. PATH entries from env are prepended to the host PATH
// so the declared tools shadow host installations without hiding them.
func (l *Launcher) Enter(ctx context.Context, env []string) error {
	shellPath := os.Getenv("SHELL")
	if shellPath == "" {
		shellPath = "/bin/sh"
	}

	cmd := exec.CommandContext(ctx, shellPath) //nolint:gosec // SHELL is the user's own shell
	cmd.Env = mergeEnvironment(os.Environ(), env)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	l.logger.Info("entering dev shell, exit the shell to return")
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		// A non-zero shell exit is the user's business, not a launch failure.
		if errors.As(err, &exitErr) {
			return nil
		}
		return zerr.Wrap(err, "failed to launch shell")
	}
	return nil
}

// mergeEnvironment layers overlay over base. Overlay keys win, except PATH,
// where overlay entries are prepended to the base value.
func mergeEnvironment(base, overlay []string) []string {
	merged := make(map[string]string, len(base)+len(overlay))
	for _, kv := range base {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		merged[key] = value
	}
	for _, kv := range overlay {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if key == "PATH" && merged["PATH"] != "" && value != "" {
			merged["PATH"] = value + string(os.PathListSeparator) + merged["PATH"]
			continue
		}
		merged[key] = value
	}

	result := make([]string, 0, len(merged))
	for key, value := range merged {
		result = append(result, key+"="+value)
	}
	return result
}

var _ ports.ShellLauncher = (*Launcher)(nil)
