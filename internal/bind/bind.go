// Package bind derives records from structs and fills structs from
// records. Fields bind by `dao:"name"` tag first, otherwise by the
// lower-cased field name; `dao:"-"` skips a field. Pointer fields map
// to nullable columns in both directions.
package bind

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hyraxx/diwata/internal/record"
	"github.com/hyraxx/diwata/internal/value"
	"github.com/hyraxx/diwata/internal/xerrors"
)

type field struct {
	column string
	index  int
}

// fieldCache keys reflect.Type to its []field so reflection over tags
// runs once per struct type.
var fieldCache sync.Map

func structFields(rt reflect.Type) []field {
	if v, ok := fieldCache.Load(rt); ok {
		return v.([]field)
	}
	fields := make([]field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		column := strings.ToLower(f.Name)
		if tag, ok := f.Tag.Lookup("dao"); ok {
			if tag == "-" {
				continue
			}
			if name, _, _ := strings.Cut(tag, ","); name != "" {
				column = name
			}
		}
		fields = append(fields, field{column: column, index: i})
	}
	fieldCache.Store(rt, fields)
	return fields
}

// ToRecord converts a struct (or pointer to struct) into a record, one
// column per bound field, converting each field through the forward
// protocol.
func ToRecord(src any) (*record.Record, error) {
	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, xerrors.ErrNilDestination
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%T: %w", src, xerrors.ErrNotStruct)
	}
	rec := record.New()
	for _, f := range structFields(rv.Type()) {
		if err := rec.Set(f.column, rv.Field(f.index).Interface()); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// FromRecord fills dst, a non-nil pointer to struct, from rec through
// the backward protocol. Columns missing from the record leave the
// field at its zero value; the first conversion failure aborts.
func FromRecord(dst any, rec *record.Record) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return xerrors.ErrNilDestination
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%T: %w", dst, xerrors.ErrNotStruct)
	}
	for _, f := range structFields(rv.Type()) {
		v, ok := rec.Value(f.column)
		if !ok {
			continue
		}
		if err := assign(rv.Field(f.index), v); err != nil {
			return fmt.Errorf("field %q: %w", f.column, err)
		}
	}
	return nil
}

// Into is FromRecord for a freshly allocated T.
func Into[T any](rec *record.Record) (T, error) {
	var out T
	if err := FromRecord(&out, rec); err != nil {
		return out, err
	}
	return out, nil
}

// assign dispatches on the concrete field type. One case per supported
// native type and one per nullable pointer form, mirroring the
// conversion protocol's registration table.
func assign(fld reflect.Value, v value.Value) error {
	switch p := fld.Addr().Interface().(type) {
	case *value.Value:
		*p = v
		return nil

	case *bool:
		return set(p, v)
	case *int8:
		return set(p, v)
	case *int16:
		return set(p, v)
	case *int32:
		return set(p, v)
	case *int64:
		return set(p, v)
	case *float32:
		return set(p, v)
	case *float64:
		return set(p, v)
	case *[]byte:
		return set(p, v)
	case *string:
		return set(p, v)
	case *uuid.UUID:
		return set(p, v)
	case *value.Date:
		return set(p, v)
	case *time.Time:
		return set(p, v)

	case **bool:
		return setNullable(p, v)
	case **int8:
		return setNullable(p, v)
	case **int16:
		return setNullable(p, v)
	case **int32:
		return setNullable(p, v)
	case **int64:
		return setNullable(p, v)
	case **float32:
		return setNullable(p, v)
	case **float64:
		return setNullable(p, v)
	case **[]byte:
		return setNullable(p, v)
	case **string:
		return setNullable(p, v)
	case **uuid.UUID:
		return setNullable(p, v)
	case **value.Date:
		return setNullable(p, v)
	case **time.Time:
		return setNullable(p, v)

	default:
		return fmt.Errorf("diwata: unsupported field type: %s", fld.Type())
	}
}

func set[T value.Scalar](p *T, v value.Value) error {
	out, err := value.As[T](v)
	if err != nil {
		return err
	}
	*p = out
	return nil
}

func setNullable[T value.Scalar](p **T, v value.Value) error {
	out, err := value.AsNullable[T](v)
	if err != nil {
		return err
	}
	*p = out
	return nil
}
