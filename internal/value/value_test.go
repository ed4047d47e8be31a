package value

import (
	"strings"
	"testing"
	"time"
	"unsafe"

	"github.com/google/uuid"
)

// Every variant must fit the same fixed footprint: one kind byte, the
// numeric slot, and a string header.
func TestValueSize(t *testing.T) {
	if s := unsafe.Sizeof(Value{}); s != 32 {
		t.Fatalf("Value is %d bytes; want 32", s)
	}
}

func TestKindLabelsTotal(t *testing.T) {
	for k := KindNil; k < kindCount; k++ {
		if strings.HasPrefix(k.String(), "Kind(") {
			t.Errorf("kind %d has no variant label", k)
		}
		if strings.HasPrefix(k.TypeName(), "Kind(") {
			t.Errorf("kind %d has no type name", k)
		}
	}
}

func TestEquality(t *testing.T) {
	if Int(42) != Int(42) {
		t.Error("equal Int values differ")
	}
	if Int(42) == Bigint(42) {
		t.Error("Int equals Bigint with same payload")
	}
	if Text("x") == Str("x") {
		t.Error("Text equals Str with same payload")
	}
	if Blob([]byte{1, 2}) != Blob([]byte{1, 2}) {
		t.Error("equal Blob values differ")
	}
	if Nil() != (Value{}) {
		t.Error("zero Value is not Nil")
	}
}

// The union owns its blob payload; mutating the source afterwards must
// not show through.
func TestBlobCopies(t *testing.T) {
	b := []byte{1, 2, 3}
	v := Blob(b)
	b[0] = 9
	got, err := As[[]byte](v)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 1 {
		t.Fatalf("blob payload mutated through source slice: %v", got)
	}
}

func TestDatePacking(t *testing.T) {
	for _, d := range []Date{
		{Year: 2021, Month: time.March, Day: 4},
		{Year: 1969, Month: time.July, Day: 20},
		{Year: 1, Month: time.January, Day: 1},
	} {
		t.Run(d.String(), func(t *testing.T) {
			if got := unpackDate(packDate(d)); got != d {
				t.Fatalf("got %v, want %v", got, d)
			}
		})
	}
}

func TestString(t *testing.T) {
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	for _, test := range []struct {
		v   Value
		exp string
	}{
		{Nil(), "Nil"},
		{Bool(true), "true"},
		{Tinyint(-5), "-5"},
		{Int(42), "42"},
		{Double(1.5), "1.5"},
		{Text("hello"), "hello"},
		{Str("world"), "world"},
		{Blob([]byte("ab")), `"ab"`},
		{UUID(u), "6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{DateValue(Date{Year: 2021, Month: time.March, Day: 4}), "2021-03-04"},
	} {
		if got := test.v.String(); got != test.exp {
			t.Errorf("%s.String() = %q; want %q", test.v.Kind(), got, test.exp)
		}
	}
}
