// Package chunk implements paletted 16x16x16 block sections and the chunk
// columns built from them.
package chunk

import (
	"fmt"
	"sort"

	"gatewire/internal/bits"
)

// Pos addresses a block within a section. All coordinates are in [0, 16).
type Pos struct {
	X, Y, Z int
}

func (p Pos) index() int { return p.Y<<8 | p.Z<<4 | p.X }

func (p Pos) valid() bool {
	return p.X >= 0 && p.X < 16 && p.Y >= 0 && p.Y < 16 && p.Z >= 0 && p.Z < 16
}

// Section is a paletted block section. The palette maps local IDs (indices)
// to global block IDs, and is kept sorted ascending with global ID 0 (air)
// pinned at local 0. The bit array stores one local ID per block.
type Section struct {
	arr *bits.Array
	// palette[local] = global. Strictly ascending; palette[0] == 0 always.
	palette []uint32
	// population[local] = number of blocks storing that local ID. The sum is
	// always 4096.
	population []uint32
	// reverse[global] = local. Mirrors palette exactly.
	reverse map[uint32]uint32
}

// NewSection creates an all-air section with 4 bits per entry.
func NewSection() *Section {
	return &Section{
		arr:        bits.New(4),
		palette:    []uint32{0},
		population: []uint32{bits.Entries},
		reverse:    map[uint32]uint32{0: 0},
	}
}

// SectionFromData reconstructs a section from wire data: a palette of global
// IDs and the packed local-ID words in the no-overflow layout. The palette
// must start with 0 and be strictly ascending. Populations are recounted.
func SectionFromData(bpe uint, palette []uint32, data []uint64) (*Section, error) {
	if len(palette) == 0 || palette[0] != 0 {
		return nil, fmt.Errorf("chunk: palette must start with air, got %v", palette)
	}
	if int(bpe) < 4 {
		return nil, fmt.Errorf("chunk: bits per entry %d is below the section minimum", bpe)
	}
	arr, err := bits.FromData(bpe, data)
	if err != nil {
		return nil, err
	}
	s := &Section{
		arr:        arr,
		palette:    palette,
		population: make([]uint32, len(palette)),
		reverse:    make(map[uint32]uint32, len(palette)),
	}
	for i, g := range palette {
		if i > 0 && g <= palette[i-1] {
			return nil, fmt.Errorf("chunk: palette is not strictly ascending at %d", i)
		}
		s.reverse[g] = uint32(i)
	}
	for i := 0; i < bits.Entries; i++ {
		local := arr.Get(i)
		if int(local) >= len(palette) {
			return nil, fmt.Errorf("chunk: stored local id %d has no palette entry", local)
		}
		s.population[local]++
	}
	return s, nil
}

// Get returns the global block ID at pos.
func (s *Section) Get(pos Pos) uint32 {
	if !pos.valid() {
		panic(fmt.Sprintf("chunk: position %v outside section", pos))
	}
	return s.palette[s.arr.Get(pos.index())]
}

// Set places the global block ID at pos, growing the palette (and the bit
// array, once the palette reaches 1<<bpe entries) as needed. Palette entries whose
// population drops to zero are pruned, except air.
func (s *Section) Set(pos Pos, global uint32) {
	if !pos.valid() {
		panic(fmt.Sprintf("chunk: position %v outside section", pos))
	}
	prev := s.arr.Get(pos.index())
	local, ok := s.reverse[global]
	if ok {
		if prev == local {
			return
		}
	} else {
		local = s.insert(global)
		// insert shifted every local id at or past the insertion point up by
		// one, including the one cached in prev.
		if local <= prev {
			prev++
		}
	}
	s.arr.Set(pos.index(), local)
	s.population[local]++
	s.population[prev]--
	if prev != 0 && s.population[prev] == 0 {
		s.remove(prev)
	}
}

// Fill sets every block in the inclusive box [min, max] to the global ID.
// The full-section case is a constant-time reset.
func (s *Section) Fill(min, max Pos, global uint32) {
	if !min.valid() || !max.valid() {
		panic(fmt.Sprintf("chunk: fill box %v..%v outside section", min, max))
	}
	if min == (Pos{}) && max == (Pos{X: 15, Y: 15, Z: 15}) {
		if global == 0 {
			*s = *NewSection()
			return
		}
		arr := bits.New(4)
		arr.Fill(1)
		*s = Section{
			arr:        arr,
			palette:    []uint32{0, global},
			population: []uint32{0, bits.Entries},
			reverse:    map[uint32]uint32{0: 0, global: 1},
		}
		return
	}
	// Walk the box once to decrement the populations along the old path.
	for y := min.Y; y <= max.Y; y++ {
		for z := min.Z; z <= max.Z; z++ {
			for x := min.X; x <= max.X; x++ {
				s.population[s.arr.Get(Pos{x, y, z}.index())]--
			}
		}
	}
	// Prune everything that hit zero, highest local id first so earlier
	// removals do not renumber later ones.
	for local := len(s.population) - 1; local >= 1; local-- {
		if s.population[local] == 0 {
			s.remove(uint32(local))
		}
	}
	local, ok := s.reverse[global]
	if !ok {
		local = s.insert(global)
	}
	count := uint32((max.X - min.X + 1) * (max.Y - min.Y + 1) * (max.Z - min.Z + 1))
	s.population[local] += count
	for y := min.Y; y <= max.Y; y++ {
		for z := min.Z; z <= max.Z; z++ {
			for x := min.X; x <= max.X; x++ {
				s.arr.Set(Pos{x, y, z}.index(), local)
			}
		}
	}
}

// insert adds a new global ID to the palette, keeping it sorted, and returns
// the new local ID. Stored local IDs and the reverse palette are renumbered
// to match. global must not already be present.
func (s *Section) insert(global uint32) uint32 {
	if len(s.palette)+1 >= 1<<s.arr.BPE() {
		if err := s.arr.Widen(1); err != nil {
			panic(err)
		}
	}
	at := uint32(sort.Search(len(s.palette), func(i int) bool { return s.palette[i] > global }))
	s.palette = append(s.palette, 0)
	copy(s.palette[at+1:], s.palette[at:])
	s.palette[at] = global
	s.population = append(s.population, 0)
	copy(s.population[at+1:], s.population[at:])
	s.population[at] = 0
	for g, l := range s.reverse {
		if l >= at {
			s.reverse[g] = l + 1
		}
	}
	s.reverse[global] = at
	// at is never 0: air occupies local 0 and every other global ID sorts
	// after it.
	s.arr.ShiftAllAbove(at-1, 1)
	return at
}

// remove drops a local ID whose population reached zero. The mirror of
// insert.
func (s *Section) remove(local uint32) {
	global := s.palette[local]
	s.palette = append(s.palette[:local], s.palette[local+1:]...)
	s.population = append(s.population[:local], s.population[local+1:]...)
	delete(s.reverse, global)
	for g, l := range s.reverse {
		if l > local {
			s.reverse[g] = l - 1
		}
	}
	s.arr.ShiftAllAbove(local, -1)
}

// BPE returns the current bits-per-entry of the backing array.
func (s *Section) BPE() uint { return s.arr.BPE() }

// Palette returns the palette of global IDs. The slice is shared, not copied.
func (s *Section) Palette() []uint32 { return s.palette }

// Data returns the packed local-ID words in the no-overflow layout.
func (s *Section) Data() []uint64 { return s.arr.Data() }

// NonAir returns the number of blocks that are not air.
func (s *Section) NonAir() int { return bits.Entries - int(s.population[0]) }

// Clone returns a deep copy of the section.
func (s *Section) Clone() *Section {
	palette := make([]uint32, len(s.palette))
	copy(palette, s.palette)
	population := make([]uint32, len(s.population))
	copy(population, s.population)
	reverse := make(map[uint32]uint32, len(s.reverse))
	for g, l := range s.reverse {
		reverse[g] = l
	}
	return &Section{arr: s.arr.Clone(), palette: palette, population: population, reverse: reverse}
}

// validate re-checks the section invariants. Only used by tests.
func (s *Section) validate() error {
	var sum uint32
	for local, n := range s.population {
		sum += n
		if local != 0 && n == 0 {
			return fmt.Errorf("local id %d has zero population", local)
		}
	}
	if sum != bits.Entries {
		return fmt.Errorf("population sum %d, want %d", sum, bits.Entries)
	}
	if len(s.palette) != len(s.reverse) {
		return fmt.Errorf("palette len %d, reverse len %d", len(s.palette), len(s.reverse))
	}
	for i, g := range s.palette {
		if i > 0 && g <= s.palette[i-1] {
			return fmt.Errorf("palette not ascending at %d", i)
		}
		if s.reverse[g] != uint32(i) {
			return fmt.Errorf("reverse[%d] = %d, want %d", g, s.reverse[g], i)
		}
	}
	return nil
}
