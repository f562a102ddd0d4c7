package domain

import "go.trai.ch/zerr"

// NixPackageInfo is the Nix-specific metadata for a resolved package on one
// system architecture.
type NixPackageInfo struct {
	// Owner is the flake repository owner (e.g., "NixOS").
	Owner InternedString `json:"owner"`

	// Repo is the flake repository name (e.g., "nixpkgs").
	Repo InternedString `json:"repo"`

	// Rev is the Git revision pinning the exact nixpkgs snapshot.
	Rev InternedString `json:"rev"`

	// AttrPath is the Nix attribute path to the package (e.g., "openssl_3").
	AttrPath InternedString `json:"attr_path"`

	// Outputs are the package's store outputs for this system.
	Outputs []LockedOutput `json:"outputs,omitempty"`
}

// LockedOutput records one store output of a resolved package.
type LockedOutput struct {
	// Name is the output name (e.g., "out", "dev", "bin").
	Name string `json:"name"`

	// Path is the absolute Nix store path of the output.
	Path string `json:"path"`

	// Default marks the output installed when none is named explicitly.
	Default bool `json:"default"`
}

// ResolvedPackage is a fully resolved package reference with
// multi-architecture support.
type ResolvedPackage struct {
	// Name is the canonical package name (e.g., "openssl").
	Name InternedString `json:"name"`

	// Version is the resolved version string (e.g., "3.0.14").
	Version InternedString `json:"version"`

	// Systems maps system strings (e.g., "x86_64-linux") to their package metadata.
	Systems map[string]NixPackageInfo `json:"systems"`
}

// InfoForSystem retrieves the package metadata for the given system.
// Returns ErrUnsupportedSystem if the package was not resolved for it.
func (p *ResolvedPackage) InfoForSystem(system string) (NixPackageInfo, error) {
	info, exists := p.Systems[system]
	if !exists {
		err := zerr.With(ErrUnsupportedSystem, "package", p.Name.String())
		err = zerr.With(err, "version", p.Version.String())
		return NixPackageInfo{}, zerr.With(err, "requested_system", system)
	}
	return info, nil
}

// DefaultOutput returns the default store output, falling back to the
// conventional "out" output when none is flagged.
func (i NixPackageInfo) DefaultOutput() (LockedOutput, bool) {
	for _, out := range i.Outputs {
		if out.Default {
			return out, true
		}
	}
	for _, out := range i.Outputs {
		if out.Name == "out" {
			return out, true
		}
	}
	return LockedOutput{}, false
}
