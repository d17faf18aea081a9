package bits

import "fmt"

// OldArray is the pre-1.16 wrapping layout: entries are packed back to back
// with no padding, so an entry may straddle two words. Every value of
// bits-per-entry divides 4096*bpe evenly into 64, so the backing slice never
// has spare space at the end.
//
// The proxy only produces this layout when re-packing sections for 1.9-1.15
// chunk packets, and reads it when ingesting chunk payloads from a legacy
// backend.
type OldArray struct {
	bpe  uint
	data []uint64
}

// NewOld creates a zeroed wrapping-layout array.
func NewOld(bpe uint) *OldArray {
	if bpe == 0 || bpe > MaxBPE {
		panic(fmt.Sprintf("bits: invalid bits per entry %d", bpe))
	}
	return &OldArray{bpe: bpe, data: make([]uint64, Entries*int(bpe)/64)}
}

// OldFromData wraps existing words. The length must be exactly 4096*bpe/64.
func OldFromData(bpe uint, data []uint64) (*OldArray, error) {
	if bpe == 0 || bpe > MaxBPE {
		return nil, fmt.Errorf("bits: invalid bits per entry %d", bpe)
	}
	if len(data) != Entries*int(bpe)/64 {
		return nil, fmt.Errorf("bits: got %d words, expected %d for bpe %d", len(data), Entries*int(bpe)/64, bpe)
	}
	return &OldArray{bpe: bpe, data: data}, nil
}

// BPE returns the bits-per-entry of the array.
func (a *OldArray) BPE() uint { return a.bpe }

// Data returns the backing words. The slice is shared, not copied.
func (a *OldArray) Data() []uint64 { return a.data }

// Get reads the entry at index, reassembling it from two words when it
// straddles a boundary. Must be bit-exact with the legacy client.
func (a *OldArray) Get(index int) uint32 {
	bpe := int(a.bpe)
	bit := index * bpe
	lo := bit / 64
	hi := (bit + bpe - 1) / 64
	shift := uint(bit % 64)
	mask := uint64(1)<<a.bpe - 1
	if lo == hi {
		return uint32(a.data[lo] >> shift & mask)
	}
	return uint32((a.data[lo]>>shift | a.data[hi]<<(64-shift)) & mask)
}

// Set writes the entry at index, splitting it across two words when needed.
func (a *OldArray) Set(index int, value uint32) {
	bpe := int(a.bpe)
	bit := index * bpe
	lo := bit / 64
	hi := (bit + bpe - 1) / 64
	shift := uint(bit % 64)
	mask := uint64(1)<<a.bpe - 1
	v := uint64(value) & mask
	a.data[lo] = a.data[lo]&^(mask<<shift) | v<<shift
	if lo != hi {
		rem := 64 - shift
		a.data[hi] = a.data[hi]&^(mask>>rem) | v>>rem
	}
}
