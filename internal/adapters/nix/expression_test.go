package nix_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shelf/internal/adapters/nix"
	"go.trai.ch/shelf/internal/core/domain"
)

func pinnedOpensslShell() domain.PinnedShell {
	return domain.PinnedShell{
		ID:     "test-id",
		Name:   "openssl",
		System: "x86_64-linux",
		BuildInputs: []domain.PinnedPackage{
			{AttrPath: "openssl_3", Rev: "abc123"},
		},
		NativeBuildInputs: []domain.PinnedPackage{
			{AttrPath: "pkg-config", Rev: "abc123"},
		},
	}
}

func TestRenderShellExpression(t *testing.T) {
	expr := nix.RenderShellExpression(pinnedOpensslShell())

	assert.Contains(t, expr, `system = "x86_64-linux";`)
	assert.Contains(t, expr, `builtins.getFlake "github:NixOS/nixpkgs/abc123"`)
	assert.Contains(t, expr, `name = "openssl";`)
	assert.Contains(t, expr, "pkgs_0.openssl_3")
	assert.Contains(t, expr, "pkgs_0.pkg-config")

	// buildInputs and nativeBuildInputs stay separate lists with the
	// library in the first and the tool in the second.
	buildIdx := strings.Index(expr, "buildInputs = [")
	nativeIdx := strings.Index(expr, "nativeBuildInputs = [")
	require.GreaterOrEqual(t, buildIdx, 0)
	require.Greater(t, nativeIdx, buildIdx)
	assert.Greater(t, strings.Index(expr, "pkgs_0.openssl_3"), buildIdx)
	assert.Greater(t, strings.Index(expr, "pkgs_0.pkg-config"), nativeIdx)
}

func TestRenderShellExpression_MultipleRevs(t *testing.T) {
	shell := pinnedOpensslShell()
	shell.NativeBuildInputs[0].Rev = "def456"

	expr := nix.RenderShellExpression(shell)

	// Revs are bound in sorted order, so abc123 is flake_0.
	assert.Contains(t, expr, `flake_0 = builtins.getFlake "github:NixOS/nixpkgs/abc123";`)
	assert.Contains(t, expr, `flake_1 = builtins.getFlake "github:NixOS/nixpkgs/def456";`)
	assert.Contains(t, expr, "pkgs_0.openssl_3")
	assert.Contains(t, expr, "pkgs_1.pkg-config")
}

func TestRenderShellExpression_Deterministic(t *testing.T) {
	shell := pinnedOpensslShell()
	shell.BuildInputs = append(shell.BuildInputs,
		domain.PinnedPackage{AttrPath: "zlib", Rev: "def456"},
		domain.PinnedPackage{AttrPath: "curl", Rev: "fed789"},
	)

	first := nix.RenderShellExpression(shell)
	for range 20 {
		assert.Equal(t, first, nix.RenderShellExpression(shell))
	}
}

func TestRenderShellExpression_Empty(t *testing.T) {
	expr := nix.RenderShellExpression(domain.PinnedShell{Name: "empty", System: "x86_64-linux"})

	assert.Contains(t, expr, "mkShell")
	assert.Contains(t, expr, "buildInputs = []")
}
