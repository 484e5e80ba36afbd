// Package optional provides a JSON field that distinguishes an absent key,
// an explicit null and a present value.
package optional

import (
	"bytes"
	"encoding/json"
)

type Value[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns a present, non-null value.
func Some[T any](v T) Value[T] {
	return Value[T]{set: true, value: v}
}

// Null returns a present value that was explicitly null.
func Null[T any]() Value[T] {
	return Value[T]{set: true, null: true}
}

// IsSet reports whether the key appeared in the payload.
func (v Value[T]) IsSet() bool { return v.set }

// IsNull reports whether the key appeared with a null value.
func (v Value[T]) IsNull() bool { return v.set && v.null }

// Get returns the value and whether it is present and non-null.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.set && !v.null
}

// Ptr returns nil for absent or null, otherwise a pointer to a copy.
func (v Value[T]) Ptr() *T {
	if !v.set || v.null {
		return nil
	}
	val := v.value
	return &val
}

// UnmarshalJSON is only invoked when the key is present, so reaching it
// marks the value as set.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.null = true
		var zero T
		v.value = zero
		return nil
	}
	v.null = false
	return json.Unmarshal(data, &v.value)
}
