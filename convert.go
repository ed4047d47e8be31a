package diwata

import (
	"github.com/hyraxx/diwata/internal/record"
	"github.com/hyraxx/diwata/internal/value"
)

// Scalar is the closed set of native types the conversion protocols
// accept.
type Scalar = value.Scalar

// From converts a native scalar into its Value variant.
func From[T Scalar](v T) Value { return value.From(v) }

// FromPtr converts a possibly-absent scalar: nil becomes the NULL
// marker.
func FromPtr[T Scalar](p *T) Value { return value.FromPtr(p) }

// As converts a Value back into the requested native type, refusing
// with *NotSupportedError anything outside the type's accepted source
// variants.
func As[T Scalar](v Value) (T, error) { return value.As[T](v) }

// AsNullable converts like As, mapping the NULL marker to nil.
func AsNullable[T Scalar](v Value) (*T, error) { return value.AsNullable[T](v) }

// Get converts the value stored under column in r into the requested
// native type.
func Get[T Scalar](r *Record, column string) (T, error) {
	return record.Get[T](r, column)
}

// GetNullable converts like Get, mapping the NULL marker to nil.
func GetNullable[T Scalar](r *Record, column string) (*T, error) {
	return record.GetNullable[T](r, column)
}

// Into fills a freshly allocated T from rec using `dao` tags.
func Into[T any](rec *Record) (T, error) {
	var out T
	if err := FromRecord(&out, rec); err != nil {
		return out, err
	}
	return out, nil
}
