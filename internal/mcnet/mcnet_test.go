package mcnet

import (
	"bytes"
	"errors"
	"testing"
)

func TestVarIntGolden(t *testing.T) {
	tests := []struct {
		v    int32
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{2097151, []byte{0xff, 0xff, 0x7f}},
		{-1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tt := range tests {
		b := NewBuffer(nil)
		b.WriteVarInt(tt.v)
		if !bytes.Equal(b.Bytes(), tt.want) {
			t.Errorf("WriteVarInt(%d) = %#v, want %#v", tt.v, b.Bytes(), tt.want)
		}
		r := NewBuffer(tt.want)
		if got := r.ReadVarInt(); got != tt.v || r.Err() != nil {
			t.Errorf("ReadVarInt(%#v) = %d, %v", tt.want, got, r.Err())
		}
	}
}

func TestBufferStickyError(t *testing.T) {
	b := NewBuffer([]byte{0x01})
	b.ReadBytes(4)
	if !errors.Is(b.Err(), ErrShortBuffer) {
		t.Fatalf("err = %v", b.Err())
	}
	// Every later read keeps failing with the same error.
	if v := b.ReadVarInt(); v != 0 {
		t.Error("read after error must return zero")
	}
	if !errors.Is(b.Err(), ErrShortBuffer) {
		t.Fatalf("err = %v", b.Err())
	}
}

func TestBufferPrimitives(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteBool(true)
	b.WriteI16(-300)
	b.WriteU16(65000)
	b.WriteI32(-70000)
	b.WriteI64(1 << 40)
	b.WriteF32(1.5)
	b.WriteF64(-2.25)
	b.WriteString("Notch")
	b.WriteVarIntPrefixedBytes([]byte{9, 8})

	r := NewBuffer(b.Bytes())
	if !r.ReadBool() || r.ReadI16() != -300 || r.ReadU16() != 65000 || r.ReadI32() != -70000 {
		t.Fatal("integer primitives misread")
	}
	if r.ReadI64() != 1<<40 || r.ReadF32() != 1.5 || r.ReadF64() != -2.25 {
		t.Fatal("wide primitives misread")
	}
	if r.ReadString(16) != "Notch" {
		t.Fatal("string misread")
	}
	if !bytes.Equal(r.ReadVarIntPrefixedBytes(), []byte{9, 8}) {
		t.Fatal("prefixed bytes misread")
	}
	if r.Err() != nil {
		t.Fatal(r.Err())
	}
}

func TestStringTooLong(t *testing.T) {
	b := NewBuffer(nil)
	b.WriteString("this name is too long")
	r := NewBuffer(b.Bytes())
	r.ReadString(4)
	if !errors.Is(r.Err(), ErrStringTooLong) {
		t.Fatalf("err = %v", r.Err())
	}
}

// pipe is an in-memory ReadWriter connecting a stream to a test.
type pipe struct {
	bytes.Buffer
}

func TestStreamRoundTrip(t *testing.T) {
	var link pipe
	out := NewStream(&link)
	in := NewStream(&link)

	p := NewPacket(0x23)
	p.WriteVarInt(13)
	out.WritePacket(p)
	if err := out.Flush(); err != nil {
		t.Fatal(err)
	}

	// Length prefix must equal the byte count of everything after it.
	raw := link.Bytes()
	length, n := frameLen(raw)
	if int(length) != len(raw)-n {
		t.Fatalf("length prefix %d, remainder %d", length, len(raw)-n)
	}

	if err := in.Poll(); err != nil {
		t.Fatal(err)
	}
	got, err := in.ReadPacket()
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != 0x23 || got.ReadVarInt() != 13 {
		t.Fatalf("packet = %+v", got)
	}
	// No second packet buffered.
	if extra, err := in.ReadPacket(); err != nil || extra != nil {
		t.Fatalf("extra packet %v, %v", extra, err)
	}
}

func TestStreamCompression(t *testing.T) {
	var link pipe
	out := NewStream(&link)
	in := NewStream(&link)
	out.SetCompression(64)
	in.SetCompression(64)

	// Below threshold: raw with a zero marker.
	small := NewPacket(0x01)
	small.WriteString("tiny")
	out.WritePacket(small)

	// Above threshold: actually deflated.
	big := NewPacket(0x02)
	big.WriteBytes(bytes.Repeat([]byte{7}, 1024))
	out.WritePacket(big)
	if err := out.Flush(); err != nil {
		t.Fatal(err)
	}
	if link.Len() >= 1024 {
		t.Errorf("compressed stream is %d bytes; deflate had no effect", link.Len())
	}

	if err := in.Poll(); err != nil {
		t.Fatal(err)
	}
	p1, err := in.ReadPacket()
	if err != nil || p1 == nil || p1.ID != 0x01 || p1.ReadString(16) != "tiny" {
		t.Fatalf("small packet = %+v, %v", p1, err)
	}
	p2, err := in.ReadPacket()
	if err != nil || p2 == nil || p2.ID != 0x02 {
		t.Fatalf("big packet = %+v, %v", p2, err)
	}
	if !bytes.Equal(p2.ReadBytes(1024), bytes.Repeat([]byte{7}, 1024)) {
		t.Fatal("big payload corrupted")
	}
}

func TestStreamEncryption(t *testing.T) {
	var link pipe
	out := NewStream(&link)
	in := NewStream(&link)
	secret := [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	if err := out.EnableEncryption(&secret); err != nil {
		t.Fatal(err)
	}
	if err := in.EnableEncryption(&secret); err != nil {
		t.Fatal(err)
	}

	p := NewPacket(0x00)
	p.WriteString("secret login")
	out.WritePacket(p)
	if err := out.Flush(); err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(link.Bytes(), []byte("secret login")) {
		t.Fatal("payload visible on the wire")
	}

	if err := in.Poll(); err != nil {
		t.Fatal(err)
	}
	got, err := in.ReadPacket()
	if err != nil || got == nil {
		t.Fatalf("packet = %v, %v", got, err)
	}
	if got.ReadString(32) != "secret login" {
		t.Fatal("decryption failed")
	}
}

func TestCFB8ByteAtATime(t *testing.T) {
	// CFB8 must produce identical output whether bytes arrive singly or all
	// at once.
	secret := [16]byte{42}
	var a, b pipe
	one := NewStream(&a)
	two := NewStream(&b)
	one.EnableEncryption(&secret)

	msg := []byte("the quick brown fox")
	p := NewPacket(0x05)
	p.WriteBytes(msg)
	one.WritePacket(p)
	one.Flush()

	// The same frame in plaintext, then encrypted one byte per call.
	q := NewPacket(0x05)
	q.WriteBytes(msg)
	two.WritePacket(q)
	two.Flush()
	two.EnableEncryption(&secret)
	frame := b.Bytes()
	for i := range frame {
		two.enc.XORKeyStream(frame[i:i+1], frame[i:i+1])
	}

	if !bytes.Equal(a.Bytes(), frame) {
		t.Fatal("byte-at-a-time encryption differs from whole-buffer encryption")
	}
}

func TestPartialFrame(t *testing.T) {
	var link pipe
	out := NewStream(&link)
	p := NewPacket(0x10)
	p.WriteBytes(bytes.Repeat([]byte{1}, 100))
	out.WritePacket(p)
	out.Flush()
	full := append([]byte(nil), link.Bytes()...)

	in := NewStream(&pipe{})
	for cut := 0; cut < len(full); cut++ {
		in.in = append([]byte(nil), full[:cut]...)
		got, err := in.ReadPacket()
		if err != nil || got != nil {
			t.Fatalf("cut %d: %v, %v", cut, got, err)
		}
	}
}

func TestOversizeFrameRejected(t *testing.T) {
	in := NewStream(&pipe{})
	b := NewBuffer(nil)
	b.WriteVarInt(maxPacketLen + 1)
	in.in = b.Bytes()
	if _, err := in.ReadPacket(); err == nil {
		t.Fatal("oversize frame must be rejected")
	}
}
