package value

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Scalar is the closed set of native types the conversion protocols
// speak. Every member has exactly one corresponding Kind, except string
// which reads back from both Text and Str.
type Scalar interface {
	bool | int8 | int16 | int32 | int64 | float32 | float64 |
		[]byte | string | uuid.UUID | Date | time.Time
}

// Nil returns the NULL marker.
func Nil() Value { return Value{} }

func Bool(v bool) Value {
	var num uint64
	if v {
		num = 1
	}
	return Value{kind: KindBool, num: num}
}

func Tinyint(v int8) Value { return Value{kind: KindTinyint, num: uint64(v)} }

func Smallint(v int16) Value { return Value{kind: KindSmallint, num: uint64(v)} }

func Int(v int32) Value { return Value{kind: KindInt, num: uint64(v)} }

func Bigint(v int64) Value { return Value{kind: KindBigint, num: uint64(v)} }

func Float(v float32) Value {
	return Value{kind: KindFloat, num: uint64(math.Float32bits(v))}
}

func Double(v float64) Value {
	return Value{kind: KindDouble, num: math.Float64bits(v)}
}

// Blob copies b into an owned byte payload. Later mutation of b does
// not affect the returned Value.
func Blob(b []byte) Value { return Value{kind: KindBlob, str: string(b)} }

// Text wraps an owned character payload.
func Text(s string) Value { return Value{kind: KindText, str: s} }

// Str marks s as a literal/constant string. The payload is the same as
// Text; the distinct kind is a presentation and type hint.
func Str(s string) Value { return Value{kind: KindStr, str: s} }

func UUID(u uuid.UUID) Value { return Value{kind: KindUUID, str: string(u[:])} }

func DateValue(d Date) Value { return Value{kind: KindDate, num: packDate(d)} }

// Timestamp stores the instant of t as UTC nanoseconds.
func Timestamp(t time.Time) Value {
	return Value{kind: KindTimestamp, num: uint64(t.UnixNano())}
}

// From converts a native scalar into its Value variant. Strings map to
// Text; use Str for literals.
func From[T Scalar](v T) Value {
	switch v := any(v).(type) {
	case bool:
		return Bool(v)
	case int8:
		return Tinyint(v)
	case int16:
		return Smallint(v)
	case int32:
		return Int(v)
	case int64:
		return Bigint(v)
	case float32:
		return Float(v)
	case float64:
		return Double(v)
	case []byte:
		return Blob(v)
	case string:
		return Text(v)
	case uuid.UUID:
		return UUID(v)
	case Date:
		return DateValue(v)
	case time.Time:
		return Timestamp(v)
	}
	panic("value: unhandled scalar type")
}

// FromPtr converts through a possibly-absent scalar: a nil pointer
// becomes Nil, anything else converts like From.
func FromPtr[T Scalar](p *T) Value {
	if p == nil {
		return Nil()
	}
	return From(*p)
}
