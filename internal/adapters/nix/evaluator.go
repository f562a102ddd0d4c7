package nix

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

// Evaluator implements ports.ShellEvaluator by shelling out to
// `nix print-dev-env` and caching the resulting environment per shell ID.
type Evaluator struct {
	cacheDir string
	logger   ports.Logger
}

// NewEvaluator creates an Evaluator with the default shell cache directory.
func NewEvaluator(logger ports.Logger) *Evaluator {
	return NewEvaluatorWithCache(logger, domain.DefaultShellCachePath())
}

// NewEvaluatorWithCache creates an Evaluator with an explicit cache directory.
func NewEvaluatorWithCache(logger ports.Logger, cacheDir string) *Evaluator {
	return &Evaluator{
		cacheDir: cacheDir,
		logger:   logger,
	}
}

// Eval evaluates the shell and returns sorted KEY=VALUE environment strings.
// A cached environment for the same shell ID is returned without invoking nix.
func (e *Evaluator) Eval(ctx context.Context, shell domain.PinnedShell) ([]string, error) {
	cachePath := filepath.Join(e.cacheDir, shell.ID+".json")
	if env, err := loadEnvFromCache(cachePath); err == nil {
		return env, nil
	}

	expr := renderShellExpression(shell)
	tmpPath, cleanup, err := writeExpressionFile(expr)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	//nolint:gosec // tmpPath is a trusted temp file created by us
	cmd := exec.CommandContext(ctx, "nix", "print-dev-env",
		"--extra-experimental-features", "nix-command flakes",
		"--json", "--file", tmpPath)
	output, err := cmd.Output()
	if err != nil {
		var stderr string
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr = string(exitErr.Stderr)
		}
		evalErr := zerr.Wrap(err, domain.ErrNixEvalFailed.Error())
		evalErr = zerr.With(evalErr, "shell", shell.Name)
		return nil, zerr.With(evalErr, "stderr", stderr)
	}

	env, err := parseDevEnv(output)
	if err != nil {
		return nil, err
	}

	if err := saveEnvToCache(cachePath, env); err != nil {
		e.logger.Warn("failed to cache shell environment: " + err.Error())
	}

	return env, nil
}

// parseDevEnv extracts exported variables from `nix print-dev-env --json`
// output as sorted KEY=VALUE strings.
func parseDevEnv(output []byte) ([]string, error) {
	var parsed devEnv
	if err := json.Unmarshal(output, &parsed); err != nil {
		return nil, zerr.Wrap(err, "failed to parse nix print-dev-env output")
	}

	env := make([]string, 0, len(parsed.Variables))
	for key, v := range parsed.Variables {
		if v.Type != "exported" {
			continue
		}
		env = append(env, key+"="+v.Value)
	}
	slices.Sort(env)
	return env, nil
}

func writeExpressionFile(expr string) (tmpPath string, cleanup func(), err error) {
	tmpFile, err := os.CreateTemp("", "shelf-shell-*.nix")
	if err != nil {
		return "", nil, zerr.Wrap(err, "failed to create temp nix file")
	}

	tmpPath = tmpFile.Name()
	cleanup = func() {
		_ = os.Remove(tmpPath)
	}

	if _, writeErr := tmpFile.WriteString(expr); writeErr != nil {
		_ = tmpFile.Close()
		cleanup()
		return "", nil, zerr.Wrap(writeErr, "failed to write nix expression")
	}
	if closeErr := tmpFile.Close(); closeErr != nil {
		cleanup()
		return "", nil, zerr.Wrap(closeErr, "failed to close temp nix file")
	}

	return tmpPath, cleanup, nil
}

func loadEnvFromCache(path string) ([]string, error) {
	//nolint:gosec // path is derived from the trusted cache directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, zerr.Wrap(err, "failed to read shell cache")
	}

	var env []string
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, zerr.Wrap(err, "failed to parse shell cache")
	}
	return env, nil
}

func saveEnvToCache(path string, env []string) error {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal shell environment")
	}
	return atomicWriteFile(path, data)
}

var _ ports.ShellEvaluator = (*Evaluator)(nil)
