package check

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hyraxx/diwata/internal/value"
)

// From coerces an arbitrary native value into the union type. Pointer
// forms map a nil pointer to the NULL marker. Anything implementing
// driver.Valuer is unwrapped first, so sql.Null* and friends coerce
// through their driver representation.
func From(x any) (value.Value, error) {
	switch x := x.(type) {
	case nil:
		return value.Nil(), nil
	case value.Value:
		return x, nil
	case *value.Value:
		if x == nil {
			return value.Nil(), nil
		}
		return *x, nil
	}

	if valuer, ok := x.(driver.Valuer); ok {
		v, err := valuer.Value()
		if err != nil {
			return value.Nil(), fmt.Errorf("diwata: driver.Valuer error: %w", err)
		}
		x = v
	}

	switch x := x.(type) {
	case nil:
		return value.Nil(), nil
	case bool:
		return value.Bool(x), nil
	case int8:
		return value.Tinyint(x), nil
	case int16:
		return value.Smallint(x), nil
	case int32:
		return value.Int(x), nil
	case int64:
		return value.Bigint(x), nil
	case int:
		return value.Bigint(int64(x)), nil
	case float32:
		return value.Float(x), nil
	case float64:
		return value.Double(x), nil
	case []byte:
		return value.Blob(x), nil
	case string:
		return value.Text(x), nil
	case uuid.UUID:
		return value.UUID(x), nil
	case [16]byte:
		return value.UUID(uuid.UUID(x)), nil
	case value.Date:
		return value.DateValue(x), nil
	case time.Time:
		return value.Timestamp(x), nil

	case *bool:
		return value.FromPtr(x), nil
	case *int8:
		return value.FromPtr(x), nil
	case *int16:
		return value.FromPtr(x), nil
	case *int32:
		return value.FromPtr(x), nil
	case *int64:
		return value.FromPtr(x), nil
	case *int:
		if x == nil {
			return value.Nil(), nil
		}
		return value.Bigint(int64(*x)), nil
	case *float32:
		return value.FromPtr(x), nil
	case *float64:
		return value.FromPtr(x), nil
	case *[]byte:
		return value.FromPtr(x), nil
	case *string:
		return value.FromPtr(x), nil
	case *uuid.UUID:
		return value.FromPtr(x), nil
	case *value.Date:
		return value.FromPtr(x), nil
	case *time.Time:
		return value.FromPtr(x), nil

	default:
		return value.Nil(), fmt.Errorf("diwata: unsupported type: %T", x)
	}
}
