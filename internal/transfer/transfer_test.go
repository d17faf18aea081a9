package transfer

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestVarIntRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 15, 16, 127, 128, 300, 1 << 20, 1<<32 - 1, 1 << 40, math.MaxUint64}
	for _, v := range values {
		w := NewWriter(nil)
		w.WriteU64(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadU64()
		if err != nil {
			t.Fatalf("ReadU64(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d = %d", v, got)
		}
		if r.CanRead() {
			t.Errorf("trailing bytes after %d", v)
		}
	}
}

func TestVarIntSmallFitsHeader(t *testing.T) {
	// Values below 16 fit entirely in the header byte.
	w := NewWriter(nil)
	w.WriteU64(15)
	if len(w.Bytes()) != 1 {
		t.Errorf("15 encoded in %d bytes, want 1", len(w.Bytes()))
	}
	w.Reset()
	w.WriteU64(16)
	if len(w.Bytes()) != 2 {
		t.Errorf("16 encoded in %d bytes, want 2", len(w.Bytes()))
	}
}

func TestSignedZigZag(t *testing.T) {
	values := []int64{0, -1, 1, -2, 63, -64, math.MaxInt64, math.MinInt64}
	for _, v := range values {
		w := NewWriter(nil)
		w.WriteI64(v)
		got, err := NewReader(w.Bytes()).ReadI64()
		if err != nil {
			t.Fatalf("ReadI64(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d = %d", v, got)
		}
	}
}

func TestFloats(t *testing.T) {
	w := NewWriter(nil)
	w.WriteF32(3.5)
	w.WriteF64(-12.25)
	r := NewReader(w.Bytes())
	f, err := r.ReadF32()
	if err != nil || f != 3.5 {
		t.Fatalf("ReadF32 = %v, %v", f, err)
	}
	d, err := r.ReadF64()
	if err != nil || d != -12.25 {
		t.Fatalf("ReadF64 = %v, %v", d, err)
	}
}

func TestStringAndBytes(t *testing.T) {
	w := NewWriter(nil)
	w.WriteStr("big gaming")
	w.WriteBytes([]byte{1, 2, 3})
	r := NewReader(w.Bytes())
	s, err := r.ReadStr()
	if err != nil || s != "big gaming" {
		t.Fatalf("ReadStr = %q, %v", s, err)
	}
	b, err := r.ReadBytes()
	if err != nil || !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Fatalf("ReadBytes = %v, %v", b, err)
	}
}

func TestInvalidUTF8(t *testing.T) {
	w := NewWriter(nil)
	w.WriteBytes([]byte{0xff, 0xfe})
	w.WriteU64(7)
	r := NewReader(w.Bytes())
	_, err := r.ReadStr()
	if !errors.As(err, &InvalidUTF8Error{}) {
		t.Fatalf("err = %v, want InvalidUTF8Error", err)
	}
	if !Recoverable(err) {
		t.Error("utf-8 error must be recoverable")
	}
	// The reader advanced past the bad field, so the next read works.
	v, err := r.ReadU64()
	if err != nil || v != 7 {
		t.Fatalf("read after bad string = %d, %v", v, err)
	}
}

func TestWrongHeaderSkips(t *testing.T) {
	w := NewWriter(nil)
	w.WriteF32(1)
	w.WriteU64(9)
	r := NewReader(w.Bytes())
	_, err := r.ReadU64()
	var wrong WrongHeaderError
	if !errors.As(err, &wrong) || wrong.Got != HeaderFloat {
		t.Fatalf("err = %v", err)
	}
	if !Recoverable(err) {
		t.Error("wrong header must be recoverable")
	}
	v, err := r.ReadU64()
	if err != nil || v != 9 {
		t.Fatalf("read after mismatch = %d, %v", v, err)
	}
}

func TestStructRoundTrip(t *testing.T) {
	w := NewWriter(nil)
	w.WriteStruct(3, func(w *Writer) {
		w.WriteU64(42)
		w.WriteStr("steve")
		w.WriteBool(true)
	})
	var (
		id   uint64
		name string
		on   bool
	)
	err := NewReader(w.Bytes()).ReadStruct(func(s *StructReader) error {
		if err := s.Field(0, func(r *Reader) error { var e error; id, e = r.ReadU64(); return e }); err != nil {
			return err
		}
		if err := s.Field(1, func(r *Reader) error { var e error; name, e = r.ReadStr(); return e }); err != nil {
			return err
		}
		return s.Field(2, func(r *Reader) error { var e error; on, e = r.ReadBool(); return e })
	})
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 || name != "steve" || !on {
		t.Fatalf("got %d %q %v", id, name, on)
	}
}

func TestStructForwardCompat(t *testing.T) {
	// A newer sender writes four fields; we only know the first and the last
	// we care about, and the struct may also end early.
	w := NewWriter(nil)
	w.WriteStruct(4, func(w *Writer) {
		w.WriteU64(1)
		w.WriteStr("skipped")
		w.WriteF64(2.5)
		w.WriteU64(99)
	})
	var first, last uint64
	err := NewReader(w.Bytes()).ReadStruct(func(s *StructReader) error {
		if err := s.Field(0, func(r *Reader) error { var e error; first, e = r.ReadU64(); return e }); err != nil {
			return err
		}
		return s.Field(3, func(r *Reader) error { var e error; last, e = r.ReadU64(); return e })
	})
	if err != nil {
		t.Fatal(err)
	}
	if first != 1 || last != 99 {
		t.Fatalf("got %d %d", first, last)
	}

	// An older sender wrote only one field: reading index 5 does not call f,
	// so the caller's value is left as it was.
	w.Reset()
	w.WriteStruct(1, func(w *Writer) { w.WriteU64(1) })
	last = 12345
	err = NewReader(w.Bytes()).ReadStruct(func(s *StructReader) error {
		return s.Field(5, func(r *Reader) error { var e error; last, e = r.ReadU64(); return e })
	})
	if err != nil {
		t.Fatal(err)
	}
	if last != 12345 {
		t.Error("absent tail field must leave the caller's value untouched")
	}
}

func TestEnum(t *testing.T) {
	w := NewWriter(nil)
	w.WriteEnum(2, 1, func(w *Writer) { w.WriteStr("inner") })
	w.WriteU64(5)
	var variant uint64
	var payload string
	r := NewReader(w.Bytes())
	err := r.ReadEnum(func(e *EnumReader) error {
		variant = e.Variant()
		return e.Field(0, func(r *Reader) error { var err error; payload, err = r.ReadStr(); return err })
	})
	if err != nil {
		t.Fatal(err)
	}
	if variant != 2 || payload != "inner" {
		t.Fatalf("got variant %d payload %q", variant, payload)
	}
	// The outer stream stays readable after the enum.
	v, err := r.ReadU64()
	if err != nil || v != 5 {
		t.Fatalf("read after enum = %d, %v", v, err)
	}
}

func TestUnknownVariantRecoverable(t *testing.T) {
	w := NewWriter(nil)
	w.WriteEnum(77, 1, func(w *Writer) { w.WriteU64(0) })
	w.WriteU64(8)
	r := NewReader(w.Bytes())
	err := r.ReadEnum(func(e *EnumReader) error {
		return InvalidVariantError(e.Variant())
	})
	var iv InvalidVariantError
	if !errors.As(err, &iv) || uint64(iv) != 77 {
		t.Fatalf("err = %v", err)
	}
	if !Recoverable(err) {
		t.Error("unknown variant must be recoverable")
	}
	v, err := r.ReadU64()
	if err != nil || v != 8 {
		t.Fatalf("read after unknown variant = %d, %v", v, err)
	}
}

func TestList(t *testing.T) {
	w := NewWriter(nil)
	w.WriteList(3, func(w *Writer) {
		w.WriteU64(1)
		w.WriteU64(2)
		w.WriteU64(3)
	})
	var got []uint64
	err := NewReader(w.Bytes()).ReadList(func(r *Reader) error {
		v, err := r.ReadU64()
		got = append(got, v)
		return err
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestTruncatedBuffer(t *testing.T) {
	w := NewWriter(nil)
	w.WriteStr("hello")
	b := w.Bytes()
	_, err := NewReader(b[:3]).ReadStr()
	if !errors.Is(err, ErrEOF) {
		t.Fatalf("err = %v, want ErrEOF", err)
	}
	if Recoverable(err) {
		t.Error("truncation must not be recoverable")
	}
}

func TestVarIntTooLong(t *testing.T) {
	data := []byte{byte(HeaderVarInt) | 0x1f<<3, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x01}
	_, err := NewReader(data).ReadU64()
	if !errors.Is(err, ErrVarIntTooLong) {
		t.Fatalf("err = %v, want ErrVarIntTooLong", err)
	}
}

func TestInvalidHeaderTag(t *testing.T) {
	// Low three bits of 0xff are 7 (List), so craft tag 7 on a truncated
	// stream separately; an invalid tag needs low bits > 7, impossible with
	// three bits, so InvalidHeaderError is only reachable through future
	// widening. Assert the classification instead.
	if Recoverable(InvalidHeaderError(9)) {
		t.Error("invalid header must not be recoverable")
	}
}

func TestFraming(t *testing.T) {
	var dst []byte
	dst = AppendFrame(dst, []byte("abc"))
	dst = AppendFrame(dst, []byte{})
	dst = AppendFrame(dst, bytes.Repeat([]byte{7}, 300))

	body, n, err := Frame(dst)
	if err != nil || string(body) != "abc" {
		t.Fatalf("frame 1 = %q, %v", body, err)
	}
	dst = dst[n:]
	body, n, err = Frame(dst)
	if err != nil || len(body) != 0 {
		t.Fatalf("frame 2 = %v, %v", body, err)
	}
	dst = dst[n:]
	body, n, err = Frame(dst)
	if err != nil || len(body) != 300 {
		t.Fatalf("frame 3 len = %d, %v", len(body), err)
	}
	dst = dst[n:]
	if len(dst) != 0 {
		t.Fatal("trailing bytes after last frame")
	}
}

func TestFramePartial(t *testing.T) {
	full := AppendFrame(nil, bytes.Repeat([]byte{1}, 200))
	for cut := 0; cut < len(full); cut++ {
		if body, n, err := Frame(full[:cut]); err != nil || n != 0 || body != nil {
			t.Fatalf("cut %d: body=%v n=%d err=%v", cut, body, n, err)
		}
	}
}
