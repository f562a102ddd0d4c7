// Package domain contains the core domain models for the dependency fragment registry.
package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// PackageRef is a reference to an external package, optionally pinned to a
// semver constraint (e.g. "openssl" or "openssl@^3").
type PackageRef struct {
	// Name is the package name as known to the upstream registry.
	Name InternedString

	// Constraint is the optional version constraint. Empty means "latest".
	Constraint InternedString
}

// ParsePackageRef parses a "name" or "name@constraint" reference string.
// The constraint, when present, must be a valid semver constraint.
func ParsePackageRef(s string) (PackageRef, error) {
	name, constraint, found := strings.Cut(s, "@")
	if name == "" {
		return PackageRef{}, zerr.With(ErrInvalidPackageRef, "ref", s)
	}
	if found {
		if constraint == "" {
			return PackageRef{}, zerr.With(ErrInvalidPackageRef, "ref", s)
		}
		if _, err := semver.NewConstraint(constraint); err != nil {
			refErr := zerr.Wrap(err, ErrInvalidPackageRef.Error())
			return PackageRef{}, zerr.With(refErr, "ref", s)
		}
	}
	return PackageRef{
		Name:       NewInternedString(name),
		Constraint: NewInternedString(constraint),
	}, nil
}

// String renders the reference back to its "name" or "name@constraint" form.
func (r PackageRef) String() string {
	if r.Constraint.String() == "" {
		return r.Name.String()
	}
	return r.Name.String() + "@" + r.Constraint.String()
}

// Matches reports whether a resolved version satisfies the reference's
// constraint. A missing constraint matches any version, and versions that do
// not parse as semver only match the empty constraint.
func (r PackageRef) Matches(version string) bool {
	if r.Constraint.String() == "" {
		return true
	}
	c, err := semver.NewConstraint(r.Constraint.String())
	if err != nil {
		return false
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	return c.Check(v)
}

func withRef(err error, ref PackageRef) error {
	return zerr.With(err, "ref", ref.String())
}

// DependencySpec is one dependency declaration record: the build and
// development-environment requirements for linking against one named native
// library.
type DependencySpec struct {
	// Name is the unique dependency key within the registry.
	Name InternedString

	// BuildInputs are package references required at compile/link time.
	// Order is as declared in the fragment.
	BuildInputs []PackageRef

	// NativeBuildInputs are tool-chain references required only during the
	// build process itself, not at link time.
	NativeBuildInputs []PackageRef
}

// Refs returns all package references of the spec, build inputs first.
func (s DependencySpec) Refs() []PackageRef {
	refs := make([]PackageRef, 0, len(s.BuildInputs)+len(s.NativeBuildInputs))
	refs = append(refs, s.BuildInputs...)
	refs = append(refs, s.NativeBuildInputs...)
	return refs
}

// DevShell is the derived interactive environment descriptor for a dependency.
// It bundles exactly the two input lists of the spec it derives from.
type DevShell struct {
	// Name is the dependency key the shell belongs to.
	Name InternedString

	// BuildInputs mirrors the spec's compile/link inputs.
	BuildInputs []PackageRef

	// NativeBuildInputs mirrors the spec's tool-chain inputs.
	NativeBuildInputs []PackageRef
}

// DevShell derives the dev shell descriptor for the spec.
// The shell declares the same two reference sets as the build entry.
func (s DependencySpec) DevShell() DevShell {
	return DevShell{
		Name:              s.Name,
		BuildInputs:       s.BuildInputs,
		NativeBuildInputs: s.NativeBuildInputs,
	}
}
