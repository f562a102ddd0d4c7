package domain

import "go.trai.ch/zerr"

var (
	// ErrDuplicateDependency is returned when two fragments declare the same dependency name.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrDependencyNotFound is returned when a requested dependency is not in the registry.
	ErrDependencyNotFound = zerr.New("dependency not found")

	// ErrInvalidFragment is returned when a fragment file fails validation.
	ErrInvalidFragment = zerr.New("invalid fragment")

	// ErrInvalidPackageRef is returned when a package reference cannot be parsed.
	ErrInvalidPackageRef = zerr.New("invalid package reference")

	// ErrUnsupportedSystem is returned when no package data exists for the current system.
	ErrUnsupportedSystem = zerr.New("unsupported system")

	// ErrPackageNotFound is returned when the resolver cannot find a package upstream.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrConstraintNotMet is returned when the resolved version violates the declared constraint.
	ErrConstraintNotMet = zerr.New("version constraint not met")

	// ErrLockfileMissing is returned when an operation requires a lockfile that does not exist.
	ErrLockfileMissing = zerr.New("lockfile missing, run 'shelf lock' first")

	// ErrLockfileStale is returned when a fragment references a package absent from the lockfile.
	ErrLockfileStale = zerr.New("lockfile stale, run 'shelf lock' again")

	// ErrNixEvalFailed is returned when the nix CLI fails to evaluate a shell expression.
	ErrNixEvalFailed = zerr.New("nix evaluation failed")

	// ErrFetchFailed is returned when a binary cache download cannot be completed.
	ErrFetchFailed = zerr.New("binary cache fetch failed")
)
