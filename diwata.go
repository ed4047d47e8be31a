// Package diwata provides a uniform, size-bounded column value type
// for relational data access, together with fallible conversions
// between that type and native Go scalars, a record abstraction over
// named columns, struct binding, and table descriptors.
package diwata

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyraxx/diwata/internal/bind"
	"github.com/hyraxx/diwata/internal/check"
	"github.com/hyraxx/diwata/internal/record"
	"github.com/hyraxx/diwata/internal/table"
	"github.com/hyraxx/diwata/internal/value"
	"github.com/hyraxx/diwata/internal/xerrors"
)

type (
	// Value is the column value union. See the value constructors
	// below and the conversion funcs in convert.go.
	Value = value.Value
	// Kind identifies a Value variant.
	Kind = value.Kind
	// Date is a calendar date without a time component.
	Date = value.Date

	// NotSupportedError reports a refused coercion.
	NotSupportedError = xerrors.NotSupportedError

	// Record maps column names to values in first-set order.
	Record = record.Record
	// Rows is a column-ordered result matrix.
	Rows = record.Rows

	// Table describes a table and its columns.
	Table = table.Table
	// Column describes one table column.
	Column = table.Column
	// TableName locates a table.
	TableName = table.Name
	// Declaration renders column declarations.
	Declaration = table.Declaration
)

const (
	KindNil       = value.KindNil
	KindBool      = value.KindBool
	KindTinyint   = value.KindTinyint
	KindSmallint  = value.KindSmallint
	KindInt       = value.KindInt
	KindBigint    = value.KindBigint
	KindFloat     = value.KindFloat
	KindDouble    = value.KindDouble
	KindBlob      = value.KindBlob
	KindText      = value.KindText
	KindStr       = value.KindStr
	KindUUID      = value.KindUUID
	KindDate      = value.KindDate
	KindTimestamp = value.KindTimestamp
)

var (
	ErrColumnNotFound = xerrors.ErrColumnNotFound
	ErrNilDestination = xerrors.ErrNilDestination
	ErrNotStruct      = xerrors.ErrNotStruct
)

// Value constructors.

func Nil() Value                  { return value.Nil() }
func Bool(v bool) Value           { return value.Bool(v) }
func Tinyint(v int8) Value        { return value.Tinyint(v) }
func Smallint(v int16) Value      { return value.Smallint(v) }
func Int(v int32) Value           { return value.Int(v) }
func Bigint(v int64) Value        { return value.Bigint(v) }
func Float(v float32) Value       { return value.Float(v) }
func Double(v float64) Value      { return value.Double(v) }
func Blob(v []byte) Value         { return value.Blob(v) }
func Text(v string) Value         { return value.Text(v) }
func Str(v string) Value          { return value.Str(v) }
func UUID(v uuid.UUID) Value      { return value.UUID(v) }
func DateValue(v Date) Value      { return value.DateValue(v) }
func Timestamp(v time.Time) Value { return value.Timestamp(v) }

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date { return value.DateOf(t) }

// NewRecord returns an empty record.
func NewRecord() *Record { return record.New() }

// NewRows returns an empty result matrix over columns.
func NewRows(columns ...string) *Rows { return record.NewRows(columns...) }

// Coerce converts an arbitrary native value (scalars, their pointers,
// driver.Valuer implementations) into a Value.
func Coerce(v any) (Value, error) { return check.From(v) }

// ToRecord derives a record from a struct using `dao` tags.
func ToRecord(src any) (*Record, error) { return bind.ToRecord(src) }

// FromRecord fills a struct from a record using `dao` tags.
func FromRecord(dst any, rec *Record) error { return bind.FromRecord(dst, rec) }
