package transfer

import (
	"math"
	"unicode/utf8"
)

// Reader decodes canonical fields from a byte slice.
type Reader struct {
	data []byte
	idx  int
}

// NewReader creates a reader over data. The slice is not copied.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// Index returns the number of bytes consumed so far.
func (r *Reader) Index() int { return r.idx }

// CanRead reports whether any bytes remain.
func (r *Reader) CanRead() bool { return r.idx < len(r.data) }

func (r *Reader) readByte() (byte, error) {
	if r.idx >= len(r.data) {
		return 0, ErrEOF
	}
	b := r.data[r.idx]
	r.idx++
	return b, nil
}

// readHeader reads a field header, returning the kind and the five extra
// bits shifted down.
func (r *Reader) readHeader() (Header, byte, error) {
	b, err := r.readByte()
	if err != nil {
		return 0, 0, err
	}
	h := Header(b & 0x07)
	if h > HeaderList {
		return 0, 0, InvalidHeaderError(b & 0x07)
	}
	return h, b >> 3, nil
}

// readVarint finishes a varint whose first five bits arrived in the header.
// Bit 0x10 of extra is the continuation flag; the low four bits are the low
// four bits of the value. Continuation bytes carry seven bits each,
// little-endian.
func (r *Reader) readVarint(extra byte) (uint64, error) {
	if extra&0x10 == 0 {
		return uint64(extra), nil
	}
	out := uint64(extra & 0x0f)
	for i := 0; ; i++ {
		if i >= 9 {
			return 0, ErrVarIntTooLong
		}
		b, err := r.readByte()
		if err != nil {
			return 0, err
		}
		out |= uint64(b&0x7f) << (i*7 + 4)
		if b&0x80 == 0 {
			return out, nil
		}
	}
}

func (r *Reader) readRaw(n int) ([]byte, error) {
	if r.idx+n > len(r.data) || n < 0 {
		return nil, ErrEOF
	}
	b := r.data[r.idx : r.idx+n]
	r.idx += n
	return b, nil
}

// SkipField advances past one field of any kind.
func (r *Reader) SkipField() error {
	h, extra, err := r.readHeader()
	if err != nil {
		return err
	}
	switch h {
	case HeaderNone:
	case HeaderVarInt:
		if _, err := r.readVarint(extra); err != nil {
			return err
		}
	case HeaderFloat:
		if _, err := r.readRaw(4); err != nil {
			return err
		}
	case HeaderDouble:
		if _, err := r.readRaw(8); err != nil {
			return err
		}
	case HeaderStruct:
		n, err := r.readVarint(extra)
		if err != nil {
			return err
		}
		if err := r.skipFields(n); err != nil {
			return err
		}
	case HeaderEnum:
		if _, err := r.readVarint(extra); err != nil {
			return err
		}
		if err := r.SkipField(); err != nil {
			return err
		}
	case HeaderBytes:
		n, err := r.readVarint(extra)
		if err != nil {
			return err
		}
		if _, err := r.readRaw(int(n)); err != nil {
			return err
		}
	case HeaderList:
		n, err := r.readVarint(extra)
		if err != nil {
			return err
		}
		if err := r.skipFields(n); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) skipFields(n uint64) error {
	for ; n > 0; n-- {
		if err := r.SkipField(); err != nil {
			return err
		}
	}
	return nil
}

// expect reads a header and finishes its varint, requiring kind want. On a
// kind mismatch the field is skipped (keeping the stream valid) and a
// WrongHeaderError is returned.
func (r *Reader) expect(want Header) (uint64, error) {
	start := r.idx
	h, extra, err := r.readHeader()
	if err != nil {
		return 0, err
	}
	if h != want {
		r.idx = start
		if err := r.SkipField(); err != nil {
			return 0, err
		}
		return 0, WrongHeaderError{Got: h, Want: want}
	}
	return r.readVarint(extra)
}

// ReadNone reads an empty field.
func (r *Reader) ReadNone() error {
	start := r.idx
	h, _, err := r.readHeader()
	if err != nil {
		return err
	}
	if h != HeaderNone {
		r.idx = start
		if err := r.SkipField(); err != nil {
			return err
		}
		return WrongHeaderError{Got: h, Want: HeaderNone}
	}
	return nil
}

// ReadU64 reads an unsigned varint field.
func (r *Reader) ReadU64() (uint64, error) { return r.expect(HeaderVarInt) }

// ReadU32 reads an unsigned varint field, truncated to 32 bits.
func (r *Reader) ReadU32() (uint32, error) {
	v, err := r.ReadU64()
	return uint32(v), err
}

// ReadU16 reads an unsigned varint field, truncated to 16 bits.
func (r *Reader) ReadU16() (uint16, error) {
	v, err := r.ReadU64()
	return uint16(v), err
}

// ReadU8 reads an unsigned varint field, truncated to 8 bits.
func (r *Reader) ReadU8() (uint8, error) {
	v, err := r.ReadU64()
	return uint8(v), err
}

// ReadI64 reads a zig-zag encoded signed varint field.
func (r *Reader) ReadI64() (int64, error) {
	v, err := r.ReadU64()
	return int64(v>>1) ^ -int64(v&1), err
}

// ReadI32 reads a zig-zag encoded signed varint field, truncated to 32 bits.
func (r *Reader) ReadI32() (int32, error) {
	v, err := r.ReadI64()
	return int32(v), err
}

// ReadI16 reads a zig-zag encoded signed varint field, truncated to 16 bits.
func (r *Reader) ReadI16() (int16, error) {
	v, err := r.ReadI64()
	return int16(v), err
}

// ReadI8 reads a zig-zag encoded signed varint field, truncated to 8 bits.
func (r *Reader) ReadI8() (int8, error) {
	v, err := r.ReadI64()
	return int8(v), err
}

// ReadBool reads a varint field that must be 0 or 1.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadU64()
	if err != nil {
		return false, err
	}
	if v > 1 {
		return false, ErrVarIntTooLong
	}
	return v == 1, nil
}

// ReadF32 reads a four-byte little-endian float field.
func (r *Reader) ReadF32() (float32, error) {
	start := r.idx
	h, _, err := r.readHeader()
	if err != nil {
		return 0, err
	}
	if h != HeaderFloat {
		r.idx = start
		if err := r.SkipField(); err != nil {
			return 0, err
		}
		return 0, WrongHeaderError{Got: h, Want: HeaderFloat}
	}
	b, err := r.readRaw(4)
	if err != nil {
		return 0, err
	}
	n := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(n), nil
}

// ReadF64 reads an eight-byte little-endian double field.
func (r *Reader) ReadF64() (float64, error) {
	start := r.idx
	h, _, err := r.readHeader()
	if err != nil {
		return 0, err
	}
	if h != HeaderDouble {
		r.idx = start
		if err := r.SkipField(); err != nil {
			return 0, err
		}
		return 0, WrongHeaderError{Got: h, Want: HeaderDouble}
	}
	b, err := r.readRaw(8)
	if err != nil {
		return 0, err
	}
	var n uint64
	for i := 7; i >= 0; i-- {
		n = n<<8 | uint64(b[i])
	}
	return math.Float64frombits(n), nil
}

// ReadBytes reads a length-prefixed byte field. The returned slice aliases
// the reader's buffer.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.expect(HeaderBytes)
	if err != nil {
		return nil, err
	}
	return r.readRaw(int(n))
}

// ReadStr reads a Bytes field and validates it as UTF-8.
func (r *Reader) ReadStr() (string, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", InvalidUTF8Error{}
	}
	return string(b), nil
}

// ReadStruct reads a struct field, calling f with a StructReader scoped to
// its fields. The reader is always advanced past the whole struct, even when
// f reads only a prefix of its fields.
func (r *Reader) ReadStruct(f func(*StructReader) error) error {
	start := r.idx
	h, extra, err := r.readHeader()
	if err != nil {
		return err
	}
	if h != HeaderStruct {
		r.idx = start
		if err := r.SkipField(); err != nil {
			return err
		}
		return WrongHeaderError{Got: h, Want: HeaderStruct}
	}
	n, err := r.readVarint(extra)
	if err != nil {
		return err
	}
	body := Reader{data: r.data, idx: r.idx}
	// Advance self past the struct first, so a partial read by f leaves the
	// outer reader in a valid state.
	if err := r.skipFields(n); err != nil {
		return err
	}
	return f(&StructReader{r: body, maxFields: n})
}

// ReadEnum reads an enum field: a discriminant followed by exactly one
// struct. f sees the discriminant before any payload is decoded, so an
// unknown variant surfaces as InvalidVariantError while the outer reader has
// already moved on.
func (r *Reader) ReadEnum(f func(*EnumReader) error) error {
	start := r.idx
	h, extra, err := r.readHeader()
	if err != nil {
		return err
	}
	if h != HeaderEnum {
		r.idx = start
		if err := r.SkipField(); err != nil {
			return err
		}
		return WrongHeaderError{Got: h, Want: HeaderEnum}
	}
	variant, err := r.readVarint(extra)
	if err != nil {
		return err
	}
	h, extra, err = r.readHeader()
	if err != nil {
		return err
	}
	if h != HeaderStruct {
		r.idx = start
		if err := r.SkipField(); err != nil {
			return err
		}
		return WrongHeaderError{Got: h, Want: HeaderStruct}
	}
	n, err := r.readVarint(extra)
	if err != nil {
		return err
	}
	body := Reader{data: r.data, idx: r.idx}
	if err := r.skipFields(n); err != nil {
		return err
	}
	return f(&EnumReader{StructReader: StructReader{r: body, maxFields: n}, variant: variant})
}

// ReadList reads a list field, calling f once per element.
func (r *Reader) ReadList(f func(*Reader) error) error {
	n, err := r.expect(HeaderList)
	if err != nil {
		return err
	}
	for ; n > 0; n-- {
		if err := f(r); err != nil {
			return err
		}
	}
	return nil
}

// StructReader reads the fields of one struct by index.
type StructReader struct {
	r         Reader
	current   uint64
	maxFields uint64
}

// Field positions the reader at the given field index and calls f to decode
// it. Indices must be read in ascending order; fields between the previous
// index and this one are skipped. If the struct ends before the index (the
// sender is older than us), f is not called and the caller's value is left
// untouched. A recoverable decode error inside f is also absorbed into the zero
// value; stream-poisoning errors propagate.
func (s *StructReader) Field(index uint64, f func(*Reader) error) error {
	if index < s.current {
		panic("transfer: struct fields must be read in ascending order")
	}
	for s.current < index {
		if s.current >= s.maxFields {
			return nil
		}
		if err := s.r.SkipField(); err != nil {
			return err
		}
		s.current++
	}
	if index >= s.maxFields {
		return nil
	}
	s.current++
	err := f(&s.r)
	if err != nil && Recoverable(err) {
		return nil
	}
	return err
}

// EnumReader reads one enum variant's payload. It behaves as a StructReader
// over the payload struct, plus access to the discriminant.
type EnumReader struct {
	StructReader
	variant uint64
}

// Variant returns the enum discriminant.
func (e *EnumReader) Variant() uint64 { return e.variant }
