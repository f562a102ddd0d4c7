package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/core/domain"
)

func TestParsePackageRef(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		wantName       string
		wantConstraint string
		wantErr        bool
	}{
		{name: "bare name", input: "openssl", wantName: "openssl"},
		{name: "with caret constraint", input: "openssl@^3", wantName: "openssl", wantConstraint: "^3"},
		{name: "with exact constraint", input: "pkg-config@0.29.2", wantName: "pkg-config", wantConstraint: "0.29.2"},
		{name: "empty", input: "", wantErr: true},
		{name: "empty name", input: "@1.0", wantErr: true},
		{name: "empty constraint", input: "openssl@", wantErr: true},
		{name: "invalid constraint", input: "openssl@not a constraint", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := domain.ParsePackageRef(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrInvalidPackageRef.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, ref.Name.String())
			assert.Equal(t, tt.wantConstraint, ref.Constraint.String())
			assert.Equal(t, tt.input, ref.String())
		})
	}
}

func TestPackageRef_Matches(t *testing.T) {
	unconstrained, err := domain.ParsePackageRef("openssl")
	require.NoError(t, err)
	assert.True(t, unconstrained.Matches("3.0.14"))
	assert.True(t, unconstrained.Matches("weird-version"))

	constrained, err := domain.ParsePackageRef("openssl@^3")
	require.NoError(t, err)
	assert.True(t, constrained.Matches("3.0.14"))
	assert.True(t, constrained.Matches("3.5.0"))
	assert.False(t, constrained.Matches("1.1.1w"))
	assert.False(t, constrained.Matches("not-semver"))
}

func TestDependencySpec_DevShell(t *testing.T) {
	spec := opensslSpec(t)

	shell := spec.DevShell()

	// The dev shell declares exactly the same two reference sets as the
	// build entry.
	assert.Equal(t, spec.Name, shell.Name)
	assert.Equal(t, spec.BuildInputs, shell.BuildInputs)
	assert.Equal(t, spec.NativeBuildInputs, shell.NativeBuildInputs)
}

func TestDependencySpec_Refs(t *testing.T) {
	spec := opensslSpec(t)

	refs := spec.Refs()
	require.Len(t, refs, 2)
	assert.Equal(t, "openssl", refs[0].String())
	assert.Equal(t, "pkg-config", refs[1].String())
}

// opensslSpec builds the canonical openssl declaration: one build input (the
// library) and one native build input (the discovery tool).
func opensslSpec(t *testing.T) domain.DependencySpec {
	t.Helper()
	openssl, err := domain.ParsePackageRef("openssl")
	require.NoError(t, err)
	pkgConfig, err := domain.ParsePackageRef("pkg-config")
	require.NoError(t, err)
	return domain.DependencySpec{
		Name:              domain.NewInternedString("openssl"),
		BuildInputs:       []domain.PackageRef{openssl},
		NativeBuildInputs: []domain.PackageRef{pkgConfig},
	}
}
