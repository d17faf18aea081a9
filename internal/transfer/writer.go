package transfer

import "math"

// Writer encodes canonical fields into a growable buffer.
type Writer struct {
	buf []byte
}

// NewWriter creates a writer. buf may be nil or a reused scratch slice; its
// contents are truncated.
func NewWriter(buf []byte) *Writer { return &Writer{buf: buf[:0]} }

// Bytes returns the encoded buffer.
func (w *Writer) Bytes() []byte { return w.buf }

// Reset truncates the buffer for reuse.
func (w *Writer) Reset() { w.buf = w.buf[:0] }

// writeHeader writes a kind tag with a varint seeded into the five extra
// bits, continuing into full bytes as needed.
func (w *Writer) writeHeader(h Header, v uint64) {
	if v < 0x10 {
		w.buf = append(w.buf, byte(h)|byte(v)<<3)
		return
	}
	w.buf = append(w.buf, byte(h)|byte(v&0x0f)<<3|0x10<<3)
	v >>= 4
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf = append(w.buf, b)
		if v == 0 {
			return
		}
	}
}

// WriteNone writes an empty field.
func (w *Writer) WriteNone() { w.buf = append(w.buf, byte(HeaderNone)) }

// WriteU64 writes an unsigned varint field.
func (w *Writer) WriteU64(v uint64) { w.writeHeader(HeaderVarInt, v) }

// WriteU32 writes an unsigned varint field.
func (w *Writer) WriteU32(v uint32) { w.WriteU64(uint64(v)) }

// WriteU16 writes an unsigned varint field.
func (w *Writer) WriteU16(v uint16) { w.WriteU64(uint64(v)) }

// WriteU8 writes an unsigned varint field.
func (w *Writer) WriteU8(v uint8) { w.WriteU64(uint64(v)) }

// WriteI64 writes a zig-zag encoded signed varint field.
func (w *Writer) WriteI64(v int64) { w.WriteU64(uint64(v<<1) ^ uint64(v>>63)) }

// WriteI32 writes a zig-zag encoded signed varint field.
func (w *Writer) WriteI32(v int32) { w.WriteI64(int64(v)) }

// WriteI16 writes a zig-zag encoded signed varint field.
func (w *Writer) WriteI16(v int16) { w.WriteI64(int64(v)) }

// WriteI8 writes a zig-zag encoded signed varint field.
func (w *Writer) WriteI8(v int8) { w.WriteI64(int64(v)) }

// WriteBool writes a varint field of 0 or 1.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteU64(1)
	} else {
		w.WriteU64(0)
	}
}

// WriteF32 writes a four-byte little-endian float field.
func (w *Writer) WriteF32(v float32) {
	n := math.Float32bits(v)
	w.buf = append(w.buf, byte(HeaderFloat), byte(n), byte(n>>8), byte(n>>16), byte(n>>24))
}

// WriteF64 writes an eight-byte little-endian double field.
func (w *Writer) WriteF64(v float64) {
	n := math.Float64bits(v)
	w.buf = append(w.buf, byte(HeaderDouble))
	for i := 0; i < 8; i++ {
		w.buf = append(w.buf, byte(n>>(8*i)))
	}
}

// WriteBytes writes a length-prefixed byte field.
func (w *Writer) WriteBytes(b []byte) {
	w.writeHeader(HeaderBytes, uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// WriteStr writes a string as a Bytes field.
func (w *Writer) WriteStr(s string) {
	w.writeHeader(HeaderBytes, uint64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteStruct writes a struct field with the given field count; f must write
// exactly that many fields.
func (w *Writer) WriteStruct(numFields uint64, f func(*Writer)) {
	w.writeHeader(HeaderStruct, numFields)
	f(w)
}

// WriteEnum writes an enum field: the discriminant, then one payload struct.
func (w *Writer) WriteEnum(variant, numFields uint64, f func(*Writer)) {
	w.writeHeader(HeaderEnum, variant)
	w.WriteStruct(numFields, f)
}

// WriteList writes a list field with n elements; f must write exactly n
// fields of identical kind.
func (w *Writer) WriteList(n uint64, f func(*Writer)) {
	w.writeHeader(HeaderList, n)
	f(w)
}
