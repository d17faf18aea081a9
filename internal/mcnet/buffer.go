// Package mcnet implements the native Minecraft wire format: varint-framed
// packets with optional zlib compression and AES/CFB8 stream encryption.
package mcnet

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Wire format errors.
var (
	ErrVarIntTooLong = errors.New("mcnet: varint longer than 5 bytes")
	ErrShortBuffer   = errors.New("mcnet: read past end of packet")
	ErrStringTooLong = errors.New("mcnet: string exceeds maximum length")
)

// Buffer is a byte buffer with the Minecraft primitive types on it. Read
// errors are sticky: after the first failure every later read returns the
// same error and a zero value, so call sites can decode a whole packet and
// check once.
type Buffer struct {
	data []byte
	idx  int
	err  error
}

// NewBuffer wraps data for reading, or an empty slice for writing.
func NewBuffer(data []byte) *Buffer { return &Buffer{data: data} }

// Bytes returns the full contents.
func (b *Buffer) Bytes() []byte { return b.data }

// Remaining returns the unread portion.
func (b *Buffer) Remaining() []byte { return b.data[b.idx:] }

// Err returns the sticky read error, if any.
func (b *Buffer) Err() error { return b.err }

// Len returns the total length.
func (b *Buffer) Len() int { return len(b.data) }

func (b *Buffer) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// ReadByte reads one byte.
func (b *Buffer) ReadByte() byte {
	if b.err != nil {
		return 0
	}
	if b.idx >= len(b.data) {
		b.fail(ErrShortBuffer)
		return 0
	}
	v := b.data[b.idx]
	b.idx++
	return v
}

// ReadBytes reads n raw bytes.
func (b *Buffer) ReadBytes(n int) []byte {
	if b.err != nil {
		return nil
	}
	if n < 0 || b.idx+n > len(b.data) {
		b.fail(ErrShortBuffer)
		return nil
	}
	v := b.data[b.idx : b.idx+n]
	b.idx += n
	return v
}

// ReadBool reads a boolean byte.
func (b *Buffer) ReadBool() bool { return b.ReadByte() != 0 }

// ReadVarInt reads a 1-5 byte Minecraft varint.
func (b *Buffer) ReadVarInt() int32 {
	var out uint32
	for i := 0; ; i++ {
		if i >= 5 {
			b.fail(ErrVarIntTooLong)
			return 0
		}
		v := b.ReadByte()
		if b.err != nil {
			return 0
		}
		out |= uint32(v&0x7f) << (7 * i)
		if v&0x80 == 0 {
			return int32(out)
		}
	}
}

// ReadU16 reads a big-endian unsigned short.
func (b *Buffer) ReadU16() uint16 {
	v := b.ReadBytes(2)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint16(v)
}

// ReadI16 reads a big-endian short.
func (b *Buffer) ReadI16() int16 { return int16(b.ReadU16()) }

// ReadI32 reads a big-endian int.
func (b *Buffer) ReadI32() int32 {
	v := b.ReadBytes(4)
	if v == nil {
		return 0
	}
	return int32(binary.BigEndian.Uint32(v))
}

// ReadU64 reads a big-endian unsigned long.
func (b *Buffer) ReadU64() uint64 {
	v := b.ReadBytes(8)
	if v == nil {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

// ReadI64 reads a big-endian long.
func (b *Buffer) ReadI64() int64 { return int64(b.ReadU64()) }

// ReadF32 reads a big-endian float.
func (b *Buffer) ReadF32() float32 { return math.Float32frombits(uint32(b.ReadI32())) }

// ReadF64 reads a big-endian double.
func (b *Buffer) ReadF64() float64 { return math.Float64frombits(b.ReadU64()) }

// ReadString reads a varint-prefixed UTF-8 string, rejecting byte lengths
// above 4*max (max counts characters, as the protocol does, and a character
// takes at most four bytes). The character count itself is not checked.
func (b *Buffer) ReadString(max int) string {
	n := b.ReadVarInt()
	if b.err != nil {
		return ""
	}
	if int(n) > max*4 {
		b.fail(fmt.Errorf("%w: %d > %d", ErrStringTooLong, n, max*4))
		return ""
	}
	v := b.ReadBytes(int(n))
	if v == nil {
		return ""
	}
	return string(v)
}

// ReadVarIntPrefixedBytes reads a varint length then that many bytes.
func (b *Buffer) ReadVarIntPrefixedBytes() []byte {
	n := b.ReadVarInt()
	if b.err != nil {
		return nil
	}
	return b.ReadBytes(int(n))
}

// WriteByte appends one byte.
func (b *Buffer) WriteByte(v byte) { b.data = append(b.data, v) }

// WriteBytes appends raw bytes.
func (b *Buffer) WriteBytes(v []byte) { b.data = append(b.data, v...) }

// WriteBool appends a boolean byte.
func (b *Buffer) WriteBool(v bool) {
	if v {
		b.WriteByte(1)
	} else {
		b.WriteByte(0)
	}
}

// WriteVarInt appends a Minecraft varint.
func (b *Buffer) WriteVarInt(v int32) {
	n := uint32(v)
	for {
		c := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			c |= 0x80
		}
		b.WriteByte(c)
		if n == 0 {
			return
		}
	}
}

// WriteVarLong appends a Minecraft varlong.
func (b *Buffer) WriteVarLong(v int64) {
	n := uint64(v)
	for {
		c := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			c |= 0x80
		}
		b.WriteByte(c)
		if n == 0 {
			return
		}
	}
}

// WriteU16 appends a big-endian unsigned short.
func (b *Buffer) WriteU16(v uint16) {
	b.data = append(b.data, byte(v>>8), byte(v))
}

// WriteI16 appends a big-endian short.
func (b *Buffer) WriteI16(v int16) { b.WriteU16(uint16(v)) }

// WriteI32 appends a big-endian int.
func (b *Buffer) WriteI32(v int32) {
	b.data = append(b.data, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// WriteU64 appends a big-endian unsigned long.
func (b *Buffer) WriteU64(v uint64) {
	var tmp [8]byte
	binary.BigEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// WriteI64 appends a big-endian long.
func (b *Buffer) WriteI64(v int64) { b.WriteU64(uint64(v)) }

// WriteF32 appends a big-endian float.
func (b *Buffer) WriteF32(v float32) { b.WriteI32(int32(math.Float32bits(v))) }

// WriteF64 appends a big-endian double.
func (b *Buffer) WriteF64(v float64) { b.WriteU64(math.Float64bits(v)) }

// WriteString appends a varint-prefixed UTF-8 string.
func (b *Buffer) WriteString(s string) {
	b.WriteVarInt(int32(len(s)))
	b.data = append(b.data, s...)
}

// WriteVarIntPrefixedBytes appends a varint length then the bytes.
func (b *Buffer) WriteVarIntPrefixedBytes(v []byte) {
	b.WriteVarInt(int32(len(v)))
	b.WriteBytes(v)
}
