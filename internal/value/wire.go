package value

import (
	"encoding"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Wire format: field 1 carries the variant discriminant as a varint,
// field 2 the numeric payload as a varint, field 3 the byte payload
// length-delimited. A Value emits field 1 plus exactly one payload
// field, or field 1 alone for Nil.
const (
	fieldKind  protowire.Number = 1
	fieldNum   protowire.Number = 2
	fieldBytes protowire.Number = 3
)

var (
	_ encoding.BinaryMarshaler   = Value{}
	_ encoding.BinaryUnmarshaler = (*Value)(nil)
)

func (k Kind) bytesPayload() bool {
	switch k {
	case KindBlob, KindText, KindStr, KindUUID:
		return true
	}
	return false
}

// MarshalBinary encodes v as the tagged wire representation.
func (v Value) MarshalBinary() ([]byte, error) {
	b := protowire.AppendTag(nil, fieldKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(v.kind))
	switch {
	case v.kind == KindNil:
	case v.kind.bytesPayload():
		b = protowire.AppendTag(b, fieldBytes, protowire.BytesType)
		b = protowire.AppendString(b, v.str)
	default:
		b = protowire.AppendTag(b, fieldNum, protowire.VarintType)
		b = protowire.AppendVarint(b, v.num)
	}
	return b, nil
}

// UnmarshalBinary reconstructs the exact variant and payload encoded by
// MarshalBinary. Unknown fields are skipped; payload fields that do not
// belong to the decoded kind are dropped so the result always satisfies
// the variant/payload pairing.
func (v *Value) UnmarshalBinary(data []byte) error {
	var (
		kind Kind
		num  uint64
		str  string
	)
	for len(data) > 0 {
		field, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("diwata: decode value: %w", protowire.ParseError(n))
		}
		data = data[n:]
		switch {
		case field == fieldKind && typ == protowire.VarintType:
			u, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("diwata: decode kind: %w", protowire.ParseError(n))
			}
			if u >= kindCount {
				return fmt.Errorf("diwata: decode kind: unknown discriminant %d", u)
			}
			kind = Kind(u)
			data = data[n:]
		case field == fieldNum && typ == protowire.VarintType:
			u, n := protowire.ConsumeVarint(data)
			if n < 0 {
				return fmt.Errorf("diwata: decode payload: %w", protowire.ParseError(n))
			}
			num = u
			data = data[n:]
		case field == fieldBytes && typ == protowire.BytesType:
			s, n := protowire.ConsumeString(data)
			if n < 0 {
				return fmt.Errorf("diwata: decode payload: %w", protowire.ParseError(n))
			}
			str = s
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(field, typ, data)
			if n < 0 {
				return fmt.Errorf("diwata: decode value: %w", protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	switch {
	case kind == KindNil:
		*v = Value{}
	case kind.bytesPayload():
		*v = Value{kind: kind, str: str}
	default:
		*v = Value{kind: kind, num: num}
	}
	return nil
}
