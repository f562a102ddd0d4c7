package domain

import (
	"runtime"

	"go.trai.ch/zerr"
)

// SupportedSystems are the Nix system strings shelf can resolve for.
var SupportedSystems = map[string]struct{}{
	"x86_64-linux":   {},
	"aarch64-linux":  {},
	"x86_64-darwin":  {},
	"aarch64-darwin": {},
}

// CurrentSystem returns the Nix system string for the running process.
func CurrentSystem() (string, error) {
	var arch string
	switch runtime.GOARCH {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	default:
		return "", zerr.With(ErrUnsupportedSystem, "goarch", runtime.GOARCH)
	}

	var os string
	switch runtime.GOOS {
	case "linux":
		os = "linux"
	case "darwin":
		os = "darwin"
	default:
		return "", zerr.With(ErrUnsupportedSystem, "goos", runtime.GOOS)
	}

	return arch + "-" + os, nil
}
