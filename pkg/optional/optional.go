// Package optional provides a generic wrapper that tells "field omitted" apart
// from "field set to its zero value" in partial updates.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field holds a value together with a flag reporting whether the value was
// supplied at all. The zero Field is unset.
//
// When decoding JSON, a Field is set as soon as its key is present in the
// document, including an explicit null. For pointer types an explicit null
// therefore yields Set == true and a nil Value, which reads as "clear".
type Field[T any] struct {
	Value T
	Set   bool
}

// Some returns a set Field holding v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// IsSet reports whether the field was supplied.
func (f Field[T]) IsSet() bool { return f.Set }

// Get returns the value and whether it was supplied.
func (f Field[T]) Get() (T, bool) { return f.Value, f.Set }

// Or returns the value when set, def otherwise.
func (f Field[T]) Or(def T) T {
	if f.Set {
		return f.Value
	}

	return def
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Value = zero

		return nil
	}

	return json.Unmarshal(data, &f.Value) //nolint: wrapcheck
}

// MarshalJSON implements json.Marshaler. An unset field encodes as null; use
// `omitzero` on the containing struct field to drop it entirely.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set {
		return []byte("null"), nil
	}

	return json.Marshal(f.Value) //nolint: wrapcheck
}

// IsZero reports whether the field is unset; it makes `omitzero` drop unset
// fields when encoding.
func (f Field[T]) IsZero() bool { return !f.Set }
