package domain

// LockfileVersion is the current lockfile format version.
const LockfileVersion = 1

// Lockfile is the reproducible snapshot of all resolved package references
// across architectures.
type Lockfile struct {
	// Version is the lockfile format version, allowing future migrations.
	Version int `json:"version"`

	// Packages maps package reference strings (e.g., "openssl@^3") to their
	// resolved package information.
	Packages map[string]ResolvedPackage `json:"packages"`
}

// NewLockfile creates an empty lockfile at the current format version.
func NewLockfile() *Lockfile {
	return &Lockfile{
		Version:  LockfileVersion,
		Packages: make(map[string]ResolvedPackage),
	}
}

// Lookup retrieves the resolved package for a reference.
// Returns ErrLockfileStale wrapped with the reference when absent, since a
// declared-but-unlocked reference means the lockfile predates the fragment.
func (l *Lockfile) Lookup(ref PackageRef) (ResolvedPackage, error) {
	pkg, exists := l.Packages[ref.String()]
	if !exists {
		return ResolvedPackage{}, withRef(ErrLockfileStale, ref)
	}
	return pkg, nil
}
