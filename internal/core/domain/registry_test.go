package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/core/domain"
)

func TestRegistry_AddAndGet(t *testing.T) {
	registry := domain.NewRegistry()
	spec := opensslSpec(t)

	require.NoError(t, registry.Add(spec))
	assert.Equal(t, 1, registry.Len())

	got, err := registry.Get("openssl")
	require.NoError(t, err)
	assert.Equal(t, spec, got)

	_, err = registry.Get("zlib")
	assert.ErrorContains(t, err, domain.ErrDependencyNotFound.Error())
}

func TestRegistry_DuplicateName(t *testing.T) {
	registry := domain.NewRegistry()
	require.NoError(t, registry.Add(opensslSpec(t)))

	err := registry.Add(opensslSpec(t))
	assert.ErrorContains(t, err, domain.ErrDuplicateDependency.Error())
}

func TestRegistry_WalkSorted(t *testing.T) {
	registry := domain.NewRegistry()
	for _, name := range []string{"zlib", "openssl", "curl"} {
		require.NoError(t, registry.Add(domain.DependencySpec{
			Name: domain.NewInternedString(name),
		}))
	}

	assert.Equal(t, []string{"curl", "openssl", "zlib"}, registry.Names())

	var walked []string
	for spec := range registry.Walk() {
		walked = append(walked, spec.Name.String())
	}
	assert.Equal(t, []string{"curl", "openssl", "zlib"}, walked)
}

func TestRegistry_RefsDeduplicated(t *testing.T) {
	registry := domain.NewRegistry()
	require.NoError(t, registry.Add(opensslSpec(t)))

	// A second dependency reusing pkg-config must not duplicate the ref.
	pkgConfig, err := domain.ParsePackageRef("pkg-config")
	require.NoError(t, err)
	zlib, err := domain.ParsePackageRef("zlib")
	require.NoError(t, err)
	require.NoError(t, registry.Add(domain.DependencySpec{
		Name:              domain.NewInternedString("zlib"),
		BuildInputs:       []domain.PackageRef{zlib},
		NativeBuildInputs: []domain.PackageRef{pkgConfig},
	}))

	refs := registry.Refs()
	require.Len(t, refs, 3)
	assert.Equal(t, "openssl", refs[0].String())
	assert.Equal(t, "pkg-config", refs[1].String())
	assert.Equal(t, "zlib", refs[2].String())
}

func TestRegistry_DigestDeterministic(t *testing.T) {
	build := func() *domain.Registry {
		registry := domain.NewRegistry()
		require.NoError(t, registry.Add(opensslSpec(t)))
		return registry
	}

	first := build().Digest()
	for range 10 {
		assert.Equal(t, first, build().Digest())
	}

	// Moving a ref between lists changes the digest.
	openssl, err := domain.ParsePackageRef("openssl")
	require.NoError(t, err)
	pkgConfig, err := domain.ParsePackageRef("pkg-config")
	require.NoError(t, err)
	swapped := domain.NewRegistry()
	require.NoError(t, swapped.Add(domain.DependencySpec{
		Name:              domain.NewInternedString("openssl"),
		BuildInputs:       []domain.PackageRef{openssl, pkgConfig},
		NativeBuildInputs: nil,
	}))
	assert.NotEqual(t, first, swapped.Digest())
}
