package chunk

import (
	"bytes"
	"encoding/binary"

	"gatewire/internal/bits"
)

// IDMap rewrites a global block ID for the target version. The identity map
// serializes a section in the canonical (newest) ID space.
type IDMap func(uint32) uint32

// putVarint appends a Minecraft varint.
func putVarint(buf *bytes.Buffer, v int32) {
	n := uint32(v)
	for {
		b := byte(n & 0x7f)
		n >>= 7
		if n != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if n == 0 {
			return
		}
	}
}

func putLongs(buf *bytes.Buffer, words []uint64) {
	putVarint(buf, int32(len(words)))
	var tmp [8]byte
	for _, w := range words {
		binary.BigEndian.PutUint64(tmp[:], w)
		buf.Write(tmp[:])
	}
}

// WriteModern serializes the section in the 1.16+ no-overflow wire form:
// bits-per-entry, varint-prefixed palette, length-prefixed big-endian words.
// Palette entries are rewritten through m.
func (s *Section) WriteModern(buf *bytes.Buffer, m IDMap) {
	buf.WriteByte(byte(s.arr.BPE()))
	putVarint(buf, int32(len(s.palette)))
	for _, g := range s.palette {
		putVarint(buf, int32(m(g)))
	}
	putLongs(buf, s.arr.Data())
}

// WriteWrapping serializes the section for 1.9-1.15 clients, re-packing the
// local IDs into the wrapping layout those versions expect.
func (s *Section) WriteWrapping(buf *bytes.Buffer, m IDMap) {
	buf.WriteByte(byte(s.arr.BPE()))
	putVarint(buf, int32(len(s.palette)))
	for _, g := range s.palette {
		putVarint(buf, int32(m(g)))
	}
	old := bits.NewOld(s.arr.BPE())
	for i := 0; i < bits.Entries; i++ {
		old.Set(i, s.arr.Get(i))
	}
	putLongs(buf, old.Data())
}

// WriteDirect serializes the section with no palette, each entry holding the
// mapped global ID itself. minBPE is the version's floor for the direct
// encoding (13 or 14 depending on the registry size of the target version).
func (s *Section) WriteDirect(buf *bytes.Buffer, m IDMap, minBPE uint) {
	bpe := minBPE
	for _, g := range s.palette {
		n := bitsFor(m(g))
		if n > bpe {
			bpe = n
		}
	}
	direct := bits.New(bpe)
	for i := 0; i < bits.Entries; i++ {
		direct.Set(i, m(s.palette[s.arr.Get(i)]))
	}
	buf.WriteByte(byte(bpe))
	putLongs(buf, direct.Data())
}

// Blocks16 flattens the section into the 1.8 format: one 16-bit value per
// block, little-endian, where m already folds the legacy metadata into the
// low 4 bits.
func (s *Section) Blocks16(buf *bytes.Buffer, m IDMap) {
	mapped := make([]uint16, len(s.palette))
	for i, g := range s.palette {
		mapped[i] = uint16(m(g))
	}
	var tmp [2]byte
	for i := 0; i < bits.Entries; i++ {
		binary.LittleEndian.PutUint16(tmp[:], mapped[s.arr.Get(i)])
		buf.Write(tmp[:])
	}
}

func bitsFor(v uint32) uint {
	n := uint(1)
	for v>>n != 0 {
		n++
	}
	return n
}
