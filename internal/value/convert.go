package value

import (
	"time"

	"github.com/google/uuid"

	"github.com/hyraxx/diwata/internal/xerrors"
)

// sources lists, per requested kind, the variants the backward protocol
// accepts. Integers and floats admit strictly widening directions;
// string admits both owned and literal text; everything else is
// exact-match. Acceptance is decided here by variant alone, never by
// inspecting the payload, so a Bigint is refused for an int32 request
// even when its value would fit.
var sources = [kindCount][]Kind{
	KindBool:      {KindBool},
	KindTinyint:   {KindTinyint},
	KindSmallint:  {KindTinyint, KindSmallint},
	KindInt:       {KindTinyint, KindSmallint, KindInt},
	KindBigint:    {KindTinyint, KindSmallint, KindInt, KindBigint},
	KindFloat:     {KindFloat},
	KindDouble:    {KindFloat, KindDouble},
	KindBlob:      {KindBlob},
	KindText:      {KindText, KindStr},
	KindStr:       {KindStr},
	KindUUID:      {KindUUID},
	KindDate:      {KindDate},
	KindTimestamp: {KindTimestamp},
}

func accepts(requested, actual Kind) bool {
	for _, k := range sources[requested] {
		if k == actual {
			return true
		}
	}
	return false
}

func notSupported(actual, requested Kind) error {
	return xerrors.NotSupported(actual.TypeName(), requested.TypeName())
}

// As converts v into the requested native scalar type. It succeeds when
// v holds T's own variant or a variant in T's accepted source set and
// returns *xerrors.NotSupportedError otherwise, Nil included.
func As[T Scalar](v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		if !accepts(KindBool, v.kind) {
			return out, notSupported(v.kind, KindBool)
		}
		*p = v.num != 0
	case *int8:
		if !accepts(KindTinyint, v.kind) {
			return out, notSupported(v.kind, KindTinyint)
		}
		*p = int8(int64(v.num))
	case *int16:
		if !accepts(KindSmallint, v.kind) {
			return out, notSupported(v.kind, KindSmallint)
		}
		*p = int16(int64(v.num))
	case *int32:
		if !accepts(KindInt, v.kind) {
			return out, notSupported(v.kind, KindInt)
		}
		*p = int32(int64(v.num))
	case *int64:
		if !accepts(KindBigint, v.kind) {
			return out, notSupported(v.kind, KindBigint)
		}
		*p = int64(v.num)
	case *float32:
		if !accepts(KindFloat, v.kind) {
			return out, notSupported(v.kind, KindFloat)
		}
		*p = v.float32()
	case *float64:
		if !accepts(KindDouble, v.kind) {
			return out, notSupported(v.kind, KindDouble)
		}
		if v.kind == KindFloat {
			*p = float64(v.float32())
		} else {
			*p = v.float64()
		}
	case *[]byte:
		if !accepts(KindBlob, v.kind) {
			return out, notSupported(v.kind, KindBlob)
		}
		*p = []byte(v.str)
	case *string:
		if !accepts(KindText, v.kind) {
			return out, notSupported(v.kind, KindText)
		}
		*p = v.str
	case *uuid.UUID:
		if !accepts(KindUUID, v.kind) {
			return out, notSupported(v.kind, KindUUID)
		}
		*p = v.uuid()
	case *Date:
		if !accepts(KindDate, v.kind) {
			return out, notSupported(v.kind, KindDate)
		}
		*p = v.date()
	case *time.Time:
		if !accepts(KindTimestamp, v.kind) {
			return out, notSupported(v.kind, KindTimestamp)
		}
		*p = v.time()
	default:
		panic("value: unhandled scalar type")
	}
	return out, nil
}

// AsNullable converts like As, treating the NULL marker as an absent
// result instead of a failure.
func AsNullable[T Scalar](v Value) (*T, error) {
	if v.kind == KindNil {
		return nil, nil
	}
	out, err := As[T](v)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
