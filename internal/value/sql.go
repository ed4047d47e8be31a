package value

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"
)

// Interface checks.
var (
	_ driver.Valuer = Value{}
	_ sql.Scanner   = (*Value)(nil)
)

// Value implements driver.Valuer so a Value can be passed directly as a
// query argument. Variants are reduced to driver.Value's safe set:
// integers widen to int64, Float widens to float64, UUID renders as its
// canonical string, Date becomes midnight UTC.
func (v Value) Value() (driver.Value, error) {
	switch v.kind {
	case KindNil:
		return nil, nil
	case KindBool:
		return v.num != 0, nil
	case KindTinyint, KindSmallint, KindInt, KindBigint:
		return int64(v.num), nil
	case KindFloat:
		return float64(v.float32()), nil
	case KindDouble:
		return v.float64(), nil
	case KindBlob:
		return []byte(v.str), nil
	case KindText, KindStr:
		return v.str, nil
	case KindUUID:
		return v.uuid().String(), nil
	case KindDate:
		return v.date().Time(), nil
	case KindTimestamp:
		return v.time(), nil
	default:
		return nil, fmt.Errorf("diwata: unsupported kind: %s", v.kind)
	}
}

// Scan implements sql.Scanner, wrapping whatever the driver produced in
// the variant closest to its wire type.
func (v *Value) Scan(src any) error {
	switch src := src.(type) {
	case nil:
		*v = Nil()
	case bool:
		*v = Bool(src)
	case int64:
		*v = Bigint(src)
	case float64:
		*v = Double(src)
	case []byte:
		*v = Blob(src)
	case string:
		*v = Text(src)
	case time.Time:
		*v = Timestamp(src)
	default:
		return fmt.Errorf("diwata: unsupported scan type: %T", src)
	}
	return nil
}
