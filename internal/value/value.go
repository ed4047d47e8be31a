// Package value implements the column value union and the conversion
// protocols between it and native Go scalars.
package value

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindTinyint
	KindSmallint
	KindInt
	KindBigint
	KindFloat
	KindDouble
	KindBlob
	KindText
	KindStr
	KindUUID
	KindDate
	KindTimestamp

	kindCount = iota
)

// String returns the variant label.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindTinyint:
		return "Tinyint"
	case KindSmallint:
		return "Smallint"
	case KindInt:
		return "Int"
	case KindBigint:
		return "Bigint"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindBlob:
		return "Blob"
	case KindText:
		return "Text"
	case KindStr:
		return "Str"
	case KindUUID:
		return "Uuid"
	case KindDate:
		return "Date"
	case KindTimestamp:
		return "Timestamp"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// TypeName returns the native type label used in conversion errors.
func (k Kind) TypeName() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindTinyint:
		return "int8"
	case KindSmallint:
		return "int16"
	case KindInt:
		return "int32"
	case KindBigint:
		return "int64"
	case KindFloat:
		return "float32"
	case KindDouble:
		return "float64"
	case KindBlob:
		return "[]byte"
	case KindText:
		return "string"
	case KindStr:
		return "static string"
	case KindUUID:
		return "uuid.UUID"
	case KindDate:
		return "value.Date"
	case KindTimestamp:
		return "time.Time"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a column value: exactly one of the Kind variants together
// with its payload. The zero Value is Nil.
//
// Every variant occupies the same 32 bytes on a 64-bit system: one kind
// byte, an 8-byte numeric slot and a string header. Numeric payloads,
// dates and timestamps live in the numeric slot; blob, text and UUID
// payloads live in the string. A Value is immutable after construction
// and comparable with ==.
type Value struct {
	kind Kind
	num  uint64
	str  string
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNil reports whether v is the NULL marker.
func (v Value) IsNil() bool { return v.kind == KindNil }

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool { return v == o }

// String renders v for diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "Nil"
	case KindBool:
		return strconv.FormatBool(v.num != 0)
	case KindTinyint, KindSmallint, KindInt, KindBigint:
		return strconv.FormatInt(int64(v.num), 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.float32()), 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.float64(), 'g', -1, 64)
	case KindBlob:
		return strconv.Quote(v.str)
	case KindText, KindStr:
		return v.str
	case KindUUID:
		return v.uuid().String()
	case KindDate:
		return v.date().String()
	case KindTimestamp:
		return v.time().Format(time.RFC3339Nano)
	default:
		return v.kind.String()
	}
}

func (v Value) float32() float32 { return math.Float32frombits(uint32(v.num)) }
func (v Value) float64() float64 { return math.Float64frombits(v.num) }

func (v Value) uuid() uuid.UUID {
	var u uuid.UUID
	copy(u[:], v.str)
	return u
}

func (v Value) date() Date { return unpackDate(v.num) }

func (v Value) time() time.Time { return time.Unix(0, int64(v.num)).UTC() }

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// packDate fits a date into the numeric slot: signed 32-bit year,
// one byte month, one byte day.
func packDate(d Date) uint64 {
	return uint64(uint32(int32(d.Year)))<<16 |
		uint64(uint8(d.Month))<<8 |
		uint64(uint8(d.Day))
}

func unpackDate(num uint64) Date {
	return Date{
		Year:  int(int32(uint32(num >> 16))),
		Month: time.Month(num >> 8 & 0xff),
		Day:   int(num & 0xff),
	}
}
