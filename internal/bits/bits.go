// Package bits implements the fixed 4096-element bit-packed arrays used for
// paletted chunk sections.
//
// Two layouts exist. Array is the 1.16+ layout, where each 64-bit word holds
// a whole number of entries and the remaining high bits stay zero. OldArray
// is the pre-1.16 layout, where entries wrap across word boundaries. All new
// data is produced in the Array layout; OldArray exists to exchange chunk
// payloads with 1.9-1.15 clients.
package bits

import "fmt"

// Entries is the number of elements in every array: one per block of a
// 16x16x16 section.
const Entries = 4096

// MaxBPE caps bits-per-entry. Values are shifted around as signed 32-bit
// integers, so 31 bits is the widest safe entry.
const MaxBPE = 31

// Array is a fixed 4096-element array of unsigned integers, each BPE bits
// wide, packed LSB-first with no entry crossing a word boundary.
type Array struct {
	bpe  uint
	data []uint64
}

// wordsFor returns the word count for the no-overflow layout: ceil(4096 /
// entriesPerWord).
func wordsFor(bpe uint) int {
	epw := 64 / bpe
	return (Entries + int(epw) - 1) / int(epw)
}

// New creates a zeroed array. bpe must be in [1, 31]; chunk sections always
// start at 4.
func New(bpe uint) *Array {
	if bpe == 0 || bpe > MaxBPE {
		panic(fmt.Sprintf("bits: invalid bits per entry %d", bpe))
	}
	return &Array{bpe: bpe, data: make([]uint64, wordsFor(bpe))}
}

// FromData wraps existing words in an Array. The length must match the
// no-overflow layout for bpe.
func FromData(bpe uint, data []uint64) (*Array, error) {
	if bpe == 0 || bpe > MaxBPE {
		return nil, fmt.Errorf("bits: invalid bits per entry %d", bpe)
	}
	if len(data) != wordsFor(bpe) {
		return nil, fmt.Errorf("bits: got %d words, expected %d for bpe %d", len(data), wordsFor(bpe), bpe)
	}
	return &Array{bpe: bpe, data: data}, nil
}

// BPE returns the bits-per-entry of the array.
func (a *Array) BPE() uint { return a.bpe }

// Data returns the backing words. The slice is shared, not copied.
func (a *Array) Data() []uint64 { return a.data }

// Get reads the entry at index. index must be in [0, 4096).
func (a *Array) Get(index int) uint32 {
	epw := 64 / a.bpe
	word := index / int(epw)
	shift := uint(index%int(epw)) * a.bpe
	mask := uint64(1)<<a.bpe - 1
	return uint32(a.data[word] >> shift & mask)
}

// Set writes the entry at index. Values wider than BPE bits are truncated.
func (a *Array) Set(index int, value uint32) {
	epw := 64 / a.bpe
	word := index / int(epw)
	shift := uint(index%int(epw)) * a.bpe
	mask := uint64(1)<<a.bpe - 1
	a.data[word] = a.data[word]&^(mask<<shift) | uint64(value)&mask<<shift
}

// ShiftAllAbove adds delta to every stored entry strictly greater than sep.
// Used when a palette entry is inserted or removed: all local IDs at or past
// the insertion point move by one.
func (a *Array) ShiftAllAbove(sep uint32, delta int32) {
	for i := 0; i < Entries; i++ {
		if v := a.Get(i); v > sep {
			a.Set(i, uint32(int32(v)+delta))
		}
	}
}

// Widen grows the array to bpe+delta bits per entry, rewriting every word.
// Returns an error if the new width would exceed MaxBPE.
func (a *Array) Widen(delta uint) error {
	bpe := a.bpe + delta
	if bpe > MaxBPE {
		return fmt.Errorf("bits: cannot widen to %d bits per entry", bpe)
	}
	widened := New(bpe)
	for i := 0; i < Entries; i++ {
		widened.Set(i, a.Get(i))
	}
	a.bpe = widened.bpe
	a.data = widened.data
	return nil
}

// Fill sets every entry to value. Used for the O(1) full-section fill.
func (a *Array) Fill(value uint32) {
	epw := 64 / a.bpe
	var word uint64
	for i := uint(0); i < epw; i++ {
		word |= uint64(value) << (i * a.bpe)
	}
	for i := range a.data {
		a.data[i] = word
	}
	// The last word may cover fewer than epw entries; the pattern above leaves
	// its tail entries set as well, which is harmless because they are never
	// indexed, but zero them to keep serialized data canonical.
	tail := Entries % int(epw)
	if tail != 0 {
		last := uint64(0)
		for i := 0; i < tail; i++ {
			last |= uint64(value) << (uint(i) * a.bpe)
		}
		a.data[len(a.data)-1] = last
	}
}

// Clone returns a deep copy of the array.
func (a *Array) Clone() *Array {
	data := make([]uint64, len(a.data))
	copy(data, a.data)
	return &Array{bpe: a.bpe, data: data}
}
