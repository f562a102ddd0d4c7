package domain

import (
	"iter"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Registry aggregates dependency fragments into one declaration set.
// Specs are immutable once added and iteration order is deterministic.
type Registry struct {
	specs map[InternedString]DependencySpec
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		specs: make(map[InternedString]DependencySpec),
	}
}

// Add adds a dependency spec to the registry.
// It returns ErrDuplicateDependency if the name is already declared.
func (r *Registry) Add(spec DependencySpec) error {
	if _, exists := r.specs[spec.Name]; exists {
		return zerr.With(ErrDuplicateDependency, "dependency", spec.Name.String())
	}
	r.specs[spec.Name] = spec
	return nil
}

// Get retrieves a dependency spec by name.
func (r *Registry) Get(name string) (DependencySpec, error) {
	spec, exists := r.specs[NewInternedString(name)]
	if !exists {
		return DependencySpec{}, zerr.With(ErrDependencyNotFound, "dependency", name)
	}
	return spec, nil
}

// Len returns the number of declared dependencies.
func (r *Registry) Len() int {
	return len(r.specs)
}

// Names returns the declared dependency names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name.String())
	}
	slices.Sort(names)
	return names
}

// Walk returns an iterator over the specs in sorted name order.
func (r *Registry) Walk() iter.Seq[DependencySpec] {
	return func(yield func(DependencySpec) bool) {
		for _, name := range r.Names() {
			if !yield(r.specs[NewInternedString(name)]) {
				return
			}
		}
	}
}

// Refs returns the deduplicated package references of all specs, sorted by
// their string form. This is the resolution work list for locking.
func (r *Registry) Refs() []PackageRef {
	seen := make(map[string]PackageRef)
	for spec := range r.Walk() {
		for _, ref := range spec.Refs() {
			seen[ref.String()] = ref
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	refs := make([]PackageRef, len(keys))
	for i, k := range keys {
		refs[i] = seen[k]
	}
	return refs
}

// Digest computes a deterministic content digest of the whole registry.
// Two registries loaded from identical fragments produce the same digest.
func (r *Registry) Digest() uint64 {
	h := xxhash.New()
	for spec := range r.Walk() {
		_, _ = h.WriteString(spec.Name.String())
		_, _ = h.Write([]byte{0})
		for _, ref := range spec.BuildInputs {
			_, _ = h.WriteString(ref.String())
			_, _ = h.Write([]byte{1})
		}
		for _, ref := range spec.NativeBuildInputs {
			_, _ = h.WriteString(ref.String())
			_, _ = h.Write([]byte{2})
		}
	}
	return h.Sum64()
}
