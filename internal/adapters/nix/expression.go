package nix

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/shelf/internal/core/domain"
)

// renderShellExpression renders a pinned shell into a Nix expression.
//
// Every distinct nixpkgs revision gets its own flake binding so inputs pinned
// to different snapshots coexist in one shell. The buildInputs and
// nativeBuildInputs lists of the mkShell mirror the fragment's two lists.
func renderShellExpression(shell domain.PinnedShell) string {
	if len(shell.BuildInputs)+len(shell.NativeBuildInputs) == 0 {
		return fmt.Sprintf(
			"let pkgs = import <nixpkgs> {}; in pkgs.mkShell { name = %q; buildInputs = []; nativeBuildInputs = []; }",
			shell.Name)
	}

	var builder strings.Builder

	builder.WriteString("let\n")
	builder.WriteString(fmt.Sprintf("system = %q;\n", shell.System))

	revs := collectRevs(shell)
	revToIdx := make(map[string]int, len(revs))
	for i, rev := range revs {
		builder.WriteString(fmt.Sprintf("flake_%d = builtins.getFlake \"github:NixOS/nixpkgs/%s\";\n", i, rev))
		builder.WriteString(fmt.Sprintf("pkgs_%d = flake_%d.legacyPackages.${system};\n", i, i))
		revToIdx[rev] = i
	}

	builder.WriteString("in\n")
	builder.WriteString("pkgs_0.mkShell {\n")

	builder.WriteString(fmt.Sprintf("name = %q;\n", shell.Name))

	builder.WriteString("buildInputs = [\n")
	writePackages(&builder, shell.BuildInputs, revToIdx)
	builder.WriteString("];\n")

	builder.WriteString("nativeBuildInputs = [\n")
	writePackages(&builder, shell.NativeBuildInputs, revToIdx)
	builder.WriteString("];\n")

	builder.WriteString("}\n")
	return builder.String()
}

// collectRevs returns the distinct revisions of the shell in sorted order so
// the rendered expression is deterministic.
func collectRevs(shell domain.PinnedShell) []string {
	seen := make(map[string]struct{})
	for _, pkg := range shell.BuildInputs {
		seen[pkg.Rev] = struct{}{}
	}
	for _, pkg := range shell.NativeBuildInputs {
		seen[pkg.Rev] = struct{}{}
	}
	revs := make([]string, 0, len(seen))
	for rev := range seen {
		revs = append(revs, rev)
	}
	slices.Sort(revs)
	return revs
}

func writePackages(builder *strings.Builder, pkgs []domain.PinnedPackage, revToIdx map[string]int) {
	for _, pkg := range pkgs {
		builder.WriteString(fmt.Sprintf("pkgs_%d.%s\n", revToIdx[pkg.Rev], pkg.AttrPath))
	}
}
