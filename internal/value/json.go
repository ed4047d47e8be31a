package value

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// JSON form: {"kind":"Int","value":42}. Nil omits the value. Blob is
// base64, UUID its canonical string, Date YYYY-MM-DD, Timestamp
// RFC 3339 with nanoseconds.
type jsonValue struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

var (
	_ json.Marshaler   = Value{}
	_ json.Unmarshaler = (*Value)(nil)
)

var kindLabels = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindNil; k < kindCount; k++ {
		m[k.String()] = k
	}
	return m
}()

func (v Value) MarshalJSON() ([]byte, error) {
	env := jsonValue{Kind: v.kind.String()}
	if v.kind != KindNil {
		var (
			payload any
			err     error
		)
		switch v.kind {
		case KindBool:
			payload = v.num != 0
		case KindTinyint, KindSmallint, KindInt, KindBigint:
			payload = int64(v.num)
		case KindFloat:
			payload = v.float32()
		case KindDouble:
			payload = v.float64()
		case KindBlob:
			payload = []byte(v.str)
		case KindText, KindStr:
			payload = v.str
		case KindUUID:
			payload = v.uuid().String()
		case KindDate:
			payload = v.date().String()
		case KindTimestamp:
			payload = v.time().Format(time.RFC3339Nano)
		}
		env.Value, err = json.Marshal(payload)
		if err != nil {
			return nil, err
		}
	}
	return json.Marshal(env)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var env jsonValue
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	kind, ok := kindLabels[env.Kind]
	if !ok {
		return fmt.Errorf("diwata: decode value: unknown kind %q", env.Kind)
	}
	if kind == KindNil {
		*v = Value{}
		return nil
	}
	switch kind {
	case KindBool:
		var b bool
		if err := json.Unmarshal(env.Value, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case KindTinyint, KindSmallint, KindInt, KindBigint:
		// json.Number keeps Bigint exact beyond 2^53.
		var n json.Number
		if err := json.Unmarshal(env.Value, &n); err != nil {
			return err
		}
		i, err := n.Int64()
		if err != nil {
			return err
		}
		switch kind {
		case KindTinyint:
			*v = Tinyint(int8(i))
		case KindSmallint:
			*v = Smallint(int16(i))
		case KindInt:
			*v = Int(int32(i))
		default:
			*v = Bigint(i)
		}
	case KindFloat:
		var f float32
		if err := json.Unmarshal(env.Value, &f); err != nil {
			return err
		}
		*v = Float(f)
	case KindDouble:
		var f float64
		if err := json.Unmarshal(env.Value, &f); err != nil {
			return err
		}
		*v = Double(f)
	case KindBlob:
		var b []byte
		if err := json.Unmarshal(env.Value, &b); err != nil {
			return err
		}
		*v = Blob(b)
	case KindText, KindStr:
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return err
		}
		if kind == KindText {
			*v = Text(s)
		} else {
			*v = Str(s)
		}
	case KindUUID:
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return err
		}
		u, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("diwata: decode uuid: %w", err)
		}
		*v = UUID(u)
	case KindDate:
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return err
		}
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return fmt.Errorf("diwata: decode date: %w", err)
		}
		*v = DateValue(DateOf(t))
	case KindTimestamp:
		var s string
		if err := json.Unmarshal(env.Value, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("diwata: decode timestamp: %w", err)
		}
		*v = Timestamp(t)
	}
	return nil
}
