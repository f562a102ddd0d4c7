package domain

import "unique"

// InternedString wraps a unique.Handle[string].
// Dependency names and package references repeat across many fragments, so
// interning keeps comparisons cheap and map keys canonical.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns its handle wrapper.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value.
// The zero value renders as the empty string.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
