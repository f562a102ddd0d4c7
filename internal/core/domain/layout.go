package domain

import "path/filepath"

const (
	// ShelfDirName is the name of the internal workspace directory.
	ShelfDirName = ".shelf"

	// CacheDirName is the name of the cache directory.
	CacheDirName = "cache"

	// ResolveDirName is the name of the resolution cache directory.
	ResolveDirName = "resolve"

	// ShellDirName is the name of the evaluated shell environment cache directory.
	ShellDirName = "shells"

	// StoreDirName is the name of the local materialization directory for fetched outputs.
	StoreDirName = "store"

	// FragmentsDirName is the default directory holding dependency fragments.
	FragmentsDirName = "deps"

	// LockFileName is the name of the lockfile.
	LockFileName = "shelf.lock.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultResolveCachePath returns the default path for the resolution cache.
func DefaultResolveCachePath() string {
	return filepath.Join(ShelfDirName, CacheDirName, ResolveDirName)
}

// DefaultShellCachePath returns the default path for the shell environment cache.
func DefaultShellCachePath() string {
	return filepath.Join(ShelfDirName, CacheDirName, ShellDirName)
}

// DefaultStorePath returns the default path for fetched package outputs.
func DefaultStorePath() string {
	return filepath.Join(ShelfDirName, StoreDirName)
}
