package codec

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Minimal big-endian NBT writer, just enough for the JoinGame registry
// payloads.
const (
	tagEnd      = 0
	tagByte     = 1
	tagInt      = 3
	tagLong     = 4
	tagFloat    = 5
	tagDouble   = 6
	tagString   = 8
	tagList     = 9
	tagCompound = 10
)

type nbtBuf struct {
	bytes.Buffer
}

func (b *nbtBuf) name(s string) {
	var l [2]byte
	binary.BigEndian.PutUint16(l[:], uint16(len(s)))
	b.Write(l[:])
	b.WriteString(s)
}

func (b *nbtBuf) putByte(name string, v int8) {
	b.WriteByte(tagByte)
	b.name(name)
	b.WriteByte(byte(v))
}

func (b *nbtBuf) putInt(name string, v int32) {
	b.WriteByte(tagInt)
	b.name(name)
	var t [4]byte
	binary.BigEndian.PutUint32(t[:], uint32(v))
	b.Write(t[:])
}

func (b *nbtBuf) putLong(name string, v int64) {
	b.WriteByte(tagLong)
	b.name(name)
	var t [8]byte
	binary.BigEndian.PutUint64(t[:], uint64(v))
	b.Write(t[:])
}

func (b *nbtBuf) putFloat(name string, v float32) {
	b.WriteByte(tagFloat)
	b.name(name)
	var t [4]byte
	binary.BigEndian.PutUint32(t[:], math.Float32bits(v))
	b.Write(t[:])
}

func (b *nbtBuf) putDouble(name string, v float64) {
	b.WriteByte(tagDouble)
	b.name(name)
	var t [8]byte
	binary.BigEndian.PutUint64(t[:], math.Float64bits(v))
	b.Write(t[:])
}

func (b *nbtBuf) putString(name, v string) {
	b.WriteByte(tagString)
	b.name(name)
	b.name(v)
}

// putCompound opens a named compound; the caller writes children then calls
// end.
func (b *nbtBuf) putCompound(name string) {
	b.WriteByte(tagCompound)
	b.name(name)
}

func (b *nbtBuf) end() { b.WriteByte(tagEnd) }

// putCompoundList writes a named TAG_List of compounds; each element of
// write is invoked to emit one unnamed compound body.
func (b *nbtBuf) putCompoundList(name string, n int, write func(i int)) {
	b.WriteByte(tagList)
	b.name(name)
	b.WriteByte(tagCompound)
	var t [4]byte
	binary.BigEndian.PutUint32(t[:], uint32(n))
	b.Write(t[:])
	for i := 0; i < n; i++ {
		write(i)
		b.end()
	}
}
