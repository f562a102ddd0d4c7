// Package config provides the fragment loader for shelf.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DirLoader implements ports.FragmentLoader by reading one YAML fragment per
// file from a directory.
type DirLoader struct {
	logger ports.Logger
}

// NewLoader creates a new DirLoader.
func NewLoader(logger ports.Logger) *DirLoader {
	return &DirLoader{logger: logger}
}

// Load reads every fragment under dir and aggregates them into a registry.
// Files are visited in sorted name order so loading is deterministic.
func (l *DirLoader) Load(dir string) (*domain.Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read fragment directory"), "dir", dir)
	}

	registry := domain.NewRegistry()
	for _, entry := range entries {
		if entry.IsDir() || !isFragmentFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		spec, err := loadFragment(path)
		if err != nil {
			return nil, err
		}
		if err := registry.Add(spec); err != nil {
			return nil, zerr.With(err, "file", path)
		}
	}

	return registry, nil
}

func isFragmentFile(name string) bool {
	ext := filepath.Ext(name)
	return ext == ".yaml" || ext == ".yml"
}

// loadFragment parses and validates one fragment file.
func loadFragment(path string) (domain.DependencySpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from the scanned fragment directory
	if err != nil {
		return domain.DependencySpec{}, zerr.With(zerr.Wrap(err, "failed to read fragment"), "file", path)
	}

	// KnownFields makes unexpected keys an error. A fragment exposes exactly
	// name, buildInputs and nativeBuildInputs, nothing else.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var dto fragmentDTO
	if err := dec.Decode(&dto); err != nil {
		fragErr := zerr.Wrap(err, domain.ErrInvalidFragment.Error())
		return domain.DependencySpec{}, zerr.With(fragErr, "file", path)
	}

	if strings.TrimSpace(dto.Name) == "" {
		return domain.DependencySpec{}, zerr.With(
			zerr.With(domain.ErrInvalidFragment, "reason", "missing name"), "file", path)
	}

	buildInputs, err := parseRefs(dto.BuildInputs, path)
	if err != nil {
		return domain.DependencySpec{}, err
	}
	nativeBuildInputs, err := parseRefs(dto.NativeBuildInputs, path)
	if err != nil {
		return domain.DependencySpec{}, err
	}

	return domain.DependencySpec{
		Name:              domain.NewInternedString(dto.Name),
		BuildInputs:       buildInputs,
		NativeBuildInputs: nativeBuildInputs,
	}, nil
}

// parseRefs parses a declared input list. Order is preserved as declared, a
// repeated reference within one list is a declaration error rather than a
// silent dedupe.
func parseRefs(raw []string, path string) ([]domain.PackageRef, error) {
	refs := make([]domain.PackageRef, 0, len(raw))
	for _, s := range raw {
		ref, err := domain.ParsePackageRef(s)
		if err != nil {
			return nil, zerr.With(err, "file", path)
		}
		refs = append(refs, ref)
	}

	names := make([]string, len(refs))
	for i, ref := range refs {
		names[i] = ref.String()
	}
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	if len(slices.Compact(sorted)) != len(names) {
		dupErr := zerr.With(domain.ErrInvalidFragment, "reason", "duplicate reference in input list")
		return nil, zerr.With(dupErr, "file", path)
	}

	return refs, nil
}

var _ ports.FragmentLoader = (*DirLoader)(nil)
