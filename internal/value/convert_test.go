package value

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hyraxx/diwata/internal/xerrors"
)

func checkRoundTrip[T Scalar](t *testing.T, in T) {
	t.Helper()
	out, err := As[T](From(in))
	if err != nil {
		t.Fatalf("round trip %v: %v", in, err)
	}
	if !reflect.DeepEqual(out, in) {
		t.Fatalf("round trip %v: got %v", in, out)
	}
}

func TestExactRoundTrip(t *testing.T) {
	t.Run("bool", func(t *testing.T) {
		checkRoundTrip(t, true)
		checkRoundTrip(t, false)
	})
	t.Run("int8", func(t *testing.T) {
		checkRoundTrip(t, int8(127))
		checkRoundTrip(t, int8(-128))
	})
	t.Run("int16", func(t *testing.T) { checkRoundTrip(t, int16(2222)) })
	t.Run("int32", func(t *testing.T) { checkRoundTrip(t, int32(-4444)) })
	t.Run("int64", func(t *testing.T) { checkRoundTrip(t, int64(1)<<60) })
	t.Run("float32", func(t *testing.T) { checkRoundTrip(t, float32(1.0)) })
	t.Run("float64", func(t *testing.T) { checkRoundTrip(t, 100.0) })
	t.Run("bytes", func(t *testing.T) { checkRoundTrip(t, []byte{1, 2, 255, 3}) })
	t.Run("string", func(t *testing.T) { checkRoundTrip(t, "hello world!") })
	t.Run("uuid", func(t *testing.T) {
		checkRoundTrip(t, uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	})
	t.Run("date", func(t *testing.T) {
		checkRoundTrip(t, Date{Year: 2021, Month: time.March, Day: 4})
	})
	t.Run("timestamp", func(t *testing.T) {
		checkRoundTrip(t, time.Unix(0, 1234567890123456789).UTC())
	})
}

func TestVariantTags(t *testing.T) {
	for _, test := range []struct {
		v    Value
		kind Kind
	}{
		{From(true), KindBool},
		{From(int8(1)), KindTinyint},
		{From(int16(1)), KindSmallint},
		{From(int32(1)), KindInt},
		{From(int64(1)), KindBigint},
		{From(float32(1)), KindFloat},
		{From(float64(1)), KindDouble},
		{From([]byte{1}), KindBlob},
		{From("x"), KindText},
		{Str("x"), KindStr},
		{From(uuid.Nil), KindUUID},
		{From(Date{Year: 2000, Month: 1, Day: 1}), KindDate},
		{From(time.Unix(1, 0)), KindTimestamp},
	} {
		if test.v.Kind() != test.kind {
			t.Errorf("got %s, want %s", test.v.Kind(), test.kind)
		}
	}
}

func TestWidening(t *testing.T) {
	got, err := As[int64](Tinyint(5))
	if err != nil {
		t.Fatal(err)
	}
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}

	if _, err := As[int32](Smallint(-7)); err != nil {
		t.Fatal(err)
	}

	f, err := As[float64](Float(1.5))
	if err != nil {
		t.Fatal(err)
	}
	if f != 1.5 {
		t.Fatalf("got %v, want 1.5", f)
	}
}

// Narrowing requests are refused by variant, even when the stored value
// would fit the requested width.
func TestNarrowingRejectedByVariant(t *testing.T) {
	for _, test := range []struct {
		name string
		err  error
	}{
		{"bigint to int32", func() error { _, err := As[int32](Bigint(7)); return err }()},
		{"int to int16", func() error { _, err := As[int16](Int(7)); return err }()},
		{"double to float32", func() error { _, err := As[float32](Double(1.5)); return err }()},
	} {
		t.Run(test.name, func(t *testing.T) {
			var conv *xerrors.NotSupportedError
			if !errors.As(test.err, &conv) {
				t.Fatalf("got %v, want NotSupportedError", test.err)
			}
		})
	}
}

func TestCrossTypeRejection(t *testing.T) {
	_, err := As[int64](Text("x"))
	var conv *xerrors.NotSupportedError
	if !errors.As(err, &conv) {
		t.Fatalf("got %v, want NotSupportedError", err)
	}
	if conv.Actual != "string" || conv.Requested != "int64" {
		t.Fatalf("got (%q, %q), want (string, int64)", conv.Actual, conv.Requested)
	}
}

func TestNilRejectedForNonNullable(t *testing.T) {
	_, err := As[bool](Nil())
	var conv *xerrors.NotSupportedError
	if !errors.As(err, &conv) {
		t.Fatalf("got %v, want NotSupportedError", err)
	}
	if conv.Actual != "nil" {
		t.Fatalf("actual label = %q, want nil", conv.Actual)
	}
}

func TestOptionality(t *testing.T) {
	if v := FromPtr[int16](nil); v != Nil() {
		t.Fatalf("FromPtr(nil) = %s, want Nil", v)
	}

	p, err := AsNullable[int16](Nil())
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Fatalf("AsNullable(Nil) = %v, want nil", *p)
	}

	p, err = AsNullable[int16](Smallint(7))
	if err != nil {
		t.Fatal(err)
	}
	if p == nil || *p != 7 {
		t.Fatalf("AsNullable(Smallint(7)) = %v, want 7", p)
	}

	n := int16(5)
	if v := FromPtr(&n); v != Smallint(5) {
		t.Fatalf("FromPtr(&5) = %s, want Smallint(5)", v)
	}

	// Errors still surface through the nullable form.
	if _, err := AsNullable[int16](Text("x")); err == nil {
		t.Fatal("expected conversion error")
	}
}

func TestStrReadsBackAsString(t *testing.T) {
	got, err := As[string](Str("literal"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "literal" {
		t.Fatalf("got %q", got)
	}
	// The reverse does not hold for other variants.
	if _, err := As[string](Blob([]byte("x"))); err == nil {
		t.Fatal("expected conversion error")
	}
}

func BenchmarkFrom(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = From(int32(42))
	}
}

func BenchmarkAs(b *testing.B) {
	v := Int(42)
	for i := 0; i < b.N; i++ {
		_, _ = As[int64](v)
	}
}
