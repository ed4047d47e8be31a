package record

import (
	"fmt"

	"github.com/hyraxx/diwata/internal/check"
	"github.com/hyraxx/diwata/internal/value"
	"github.com/hyraxx/diwata/internal/xerrors"
)

// Record maps column names to values, keeping the order in which
// columns were first set. It is the currency between result rows and
// application structs; data moves in and out exclusively through the
// value conversion protocols.
type Record struct {
	columns []string
	values  map[string]value.Value
}

func New() *Record {
	return &Record{values: make(map[string]value.Value)}
}

// Set coerces v through the forward protocol and stores it under
// column, replacing any previous value.
func (r *Record) Set(column string, v any) error {
	cv, err := check.From(v)
	if err != nil {
		return fmt.Errorf("set %q: %w", column, err)
	}
	r.SetValue(column, cv)
	return nil
}

// SetValue stores an already-converted value under column.
func (r *Record) SetValue(column string, v value.Value) {
	if _, ok := r.values[column]; !ok {
		r.columns = append(r.columns, column)
	}
	r.values[column] = v
}

// Value returns the value stored under column.
func (r *Record) Value(column string) (value.Value, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Columns returns the column names in first-set order.
func (r *Record) Columns() []string {
	out := make([]string, len(r.columns))
	copy(out, r.columns)
	return out
}

func (r *Record) Len() int { return len(r.columns) }

// Remove drops column from the record and reports whether it was
// present.
func (r *Record) Remove(column string) bool {
	if _, ok := r.values[column]; !ok {
		return false
	}
	delete(r.values, column)
	for i, c := range r.columns {
		if c == column {
			r.columns = append(r.columns[:i], r.columns[i+1:]...)
			break
		}
	}
	return true
}

// Equal reports whether both records hold the same columns in the same
// order with equal values.
func (r *Record) Equal(o *Record) bool {
	if r == nil || o == nil {
		return r == o
	}
	if len(r.columns) != len(o.columns) {
		return false
	}
	for i, c := range r.columns {
		if o.columns[i] != c {
			return false
		}
		if r.values[c] != o.values[c] {
			return false
		}
	}
	return true
}

// Get converts the value stored under column into the requested native
// type through the backward protocol.
func Get[T value.Scalar](r *Record, column string) (T, error) {
	v, ok := r.Value(column)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", column, xerrors.ErrColumnNotFound)
	}
	return value.As[T](v)
}

// GetNullable converts like Get, mapping the NULL marker to nil.
func GetNullable[T value.Scalar](r *Record, column string) (*T, error) {
	v, ok := r.Value(column)
	if !ok {
		return nil, fmt.Errorf("%q: %w", column, xerrors.ErrColumnNotFound)
	}
	return value.AsNullable[T](v)
}
