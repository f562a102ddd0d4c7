package lockstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/adapters/lockstore"
	"go.trai.ch/shelf/internal/core/domain"
)

func testLock() *domain.Lockfile {
	lock := domain.NewLockfile()
	lock.Packages["openssl"] = domain.ResolvedPackage{
		Name:    domain.NewInternedString("openssl"),
		Version: domain.NewInternedString("3.0.14"),
		Systems: map[string]domain.NixPackageInfo{
			"x86_64-linux": {
				Owner:    domain.NewInternedString("NixOS"),
				Repo:     domain.NewInternedString("nixpkgs"),
				Rev:      domain.NewInternedString("abc123"),
				AttrPath: domain.NewInternedString("openssl_3"),
				Outputs: []domain.LockedOutput{
					{Name: "out", Path: "/nix/store/aaaabbbbccccddddeeeeffffgggghhhh-openssl-3.0.14", Default: true},
				},
			},
		},
	}
	lock.Packages["pkg-config"] = domain.ResolvedPackage{
		Name:    domain.NewInternedString("pkg-config"),
		Version: domain.NewInternedString("0.29.2"),
		Systems: map[string]domain.NixPackageInfo{},
	}
	return lock
}

func TestStore_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	store := lockstore.NewStoreAt(path)

	require.NoError(t, store.Save(testLock()))

	loaded, err := store.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.LockfileVersion, loaded.Version)
	assert.Equal(t, testLock().Packages, loaded.Packages)
}

func TestStore_LoadMissing(t *testing.T) {
	store := lockstore.NewStoreAt(filepath.Join(t.TempDir(), domain.LockFileName))

	_, err := store.Load()
	assert.ErrorContains(t, err, domain.ErrLockfileMissing.Error())
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := lockstore.NewStoreAt(path).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLockfileMissing)
}

func TestStore_SaveDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.LockFileName)
	store := lockstore.NewStoreAt(path)

	require.NoError(t, store.Save(testLock()))
	first, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(testLock()))
	second, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, first, second, "saving the same lockfile must produce identical bytes")
	assert.Equal(t, byte('\n'), first[len(first)-1])
}
