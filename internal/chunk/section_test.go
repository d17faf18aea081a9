package chunk

import (
	"bytes"
	"testing"
)

func TestSectionGetSet(t *testing.T) {
	s := NewSection()
	p := Pos{1, 2, 3}
	s.Set(p, 13)
	if got := s.Get(p); got != 13 {
		t.Fatalf("Get = %d, want 13", got)
	}
	if got := s.Get(Pos{0, 0, 0}); got != 0 {
		t.Fatalf("untouched block = %d, want air", got)
	}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
	// Setting the same block again is a no-op.
	s.Set(p, 13)
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSectionPaletteSorted(t *testing.T) {
	s := NewSection()
	s.Set(Pos{0, 0, 0}, 30)
	s.Set(Pos{1, 0, 0}, 10)
	s.Set(Pos{2, 0, 0}, 20)
	want := []uint32{0, 10, 20, 30}
	got := s.Palette()
	if len(got) != len(want) {
		t.Fatalf("palette = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("palette = %v, want %v", got, want)
		}
	}
	// Every block must still read back correctly after the inserts shifted
	// local ids around.
	if s.Get(Pos{0, 0, 0}) != 30 || s.Get(Pos{1, 0, 0}) != 10 || s.Get(Pos{2, 0, 0}) != 20 {
		t.Fatal("blocks misread after palette inserts")
	}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSectionPrune(t *testing.T) {
	s := NewSection()
	p := Pos{5, 5, 5}
	s.Set(p, 99)
	s.Set(p, 7)
	// 99 had a population of one; overwriting it must prune it.
	if len(s.Palette()) != 2 {
		t.Fatalf("palette = %v, want [0 7]", s.Palette())
	}
	if s.Get(p) != 7 {
		t.Fatalf("Get = %d, want 7", s.Get(p))
	}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSectionPaletteGrowth(t *testing.T) {
	// Scenario from the palette-growth contract: 16 distinct non-air IDs push
	// the section from 4 to 5 bits per entry.
	s := NewSection()
	for i := 0; i < 16; i++ {
		s.Set(Pos{X: i}, uint32(100+i))
		switch {
		case i < 14:
			if s.BPE() != 4 {
				t.Fatalf("after %d inserts: bpe = %d, want 4", i+1, s.BPE())
			}
		case i == 14:
			if s.BPE() != 5 {
				t.Fatalf("after the 15th distinct id: bpe = %d, want 5", s.BPE())
			}
		}
	}
	if len(s.Palette()) != 17 {
		t.Fatalf("palette length = %d, want 17", len(s.Palette()))
	}
	for i := 0; i < 16; i++ {
		if got := s.Get(Pos{X: i}); got != uint32(100+i) {
			t.Fatalf("Get(%d) = %d, want %d", i, got, 100+i)
		}
	}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSectionFillFull(t *testing.T) {
	s := NewSection()
	s.Set(Pos{3, 3, 3}, 42)
	s.Fill(Pos{}, Pos{15, 15, 15}, 7)
	for _, p := range []Pos{{0, 0, 0}, {3, 3, 3}, {15, 15, 15}} {
		if got := s.Get(p); got != 7 {
			t.Fatalf("Get(%v) = %d, want 7", p, got)
		}
	}
	if len(s.Palette()) != 2 {
		t.Fatalf("palette = %v, want [0 7]", s.Palette())
	}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}

	s.Fill(Pos{}, Pos{15, 15, 15}, 0)
	if len(s.Palette()) != 1 || s.Get(Pos{8, 8, 8}) != 0 {
		t.Fatal("full air fill must reset the section")
	}
}

func TestSectionFillPartial(t *testing.T) {
	s := NewSection()
	s.Set(Pos{0, 0, 0}, 5)
	s.Fill(Pos{0, 0, 0}, Pos{7, 7, 7}, 9)
	for y := 0; y < 16; y++ {
		for z := 0; z < 16; z++ {
			for x := 0; x < 16; x++ {
				want := uint32(0)
				if x < 8 && y < 8 && z < 8 {
					want = 9
				}
				if got := s.Get(Pos{x, y, z}); got != want {
					t.Fatalf("Get(%d,%d,%d) = %d, want %d", x, y, z, got, want)
				}
			}
		}
	}
	// 5 was completely overwritten and must be gone from the palette.
	for _, g := range s.Palette() {
		if g == 5 {
			t.Fatal("pruned id still present in palette")
		}
	}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}
}

func TestSectionFromData(t *testing.T) {
	src := NewSection()
	src.Set(Pos{1, 0, 0}, 17)
	src.Set(Pos{2, 0, 0}, 4)
	data := make([]uint64, len(src.Data()))
	copy(data, src.Data())
	palette := make([]uint32, len(src.Palette()))
	copy(palette, src.Palette())

	s, err := SectionFromData(src.BPE(), palette, data)
	if err != nil {
		t.Fatal(err)
	}
	if s.Get(Pos{1, 0, 0}) != 17 || s.Get(Pos{2, 0, 0}) != 4 {
		t.Fatal("reconstructed section misreads blocks")
	}
	if err := s.validate(); err != nil {
		t.Fatal(err)
	}

	if _, err := SectionFromData(4, []uint32{1, 2}, data); err == nil {
		t.Error("palette without leading air must be rejected")
	}
	if _, err := SectionFromData(4, []uint32{0, 5, 3}, data); err == nil {
		t.Error("unsorted palette must be rejected")
	}
}

func TestWriteModern(t *testing.T) {
	s := NewSection()
	s.Set(Pos{0, 0, 0}, 1)
	s.Set(Pos{1, 0, 0}, 17)
	var buf bytes.Buffer
	s.WriteModern(&buf, func(g uint32) uint32 { return g })
	b := buf.Bytes()
	if b[0] != 4 {
		t.Fatalf("bpe byte = %d, want 4", b[0])
	}
	// varint 3 (palette length), then palette 0, 1, 17.
	if b[1] != 3 || b[2] != 0 || b[3] != 1 || b[4] != 17 {
		t.Fatalf("palette bytes = %v", b[1:5])
	}
	// varint 256 (word count) is two bytes: 0x80 0x02.
	if b[5] != 0x80 || b[6] != 0x02 {
		t.Fatalf("length prefix = %#x %#x, want 0x80 0x02", b[5], b[6])
	}
	if len(b) != 7+256*8 {
		t.Fatalf("serialized length = %d, want %d", len(b), 7+256*8)
	}
}

func TestBlocks16(t *testing.T) {
	// Chunk translation to 1.8: ids 1 and 17 map to legacy 1<<4 and 17<<4,
	// every other block stays air.
	s := NewSection()
	s.Set(Pos{0, 0, 0}, 1)
	s.Set(Pos{1, 0, 0}, 17)
	var buf bytes.Buffer
	s.Blocks16(&buf, func(g uint32) uint32 { return g << 4 })
	b := buf.Bytes()
	if len(b) != 4096*2 {
		t.Fatalf("length = %d, want 8192", len(b))
	}
	if b[0] != 1<<4 || b[1] != 0 {
		t.Fatalf("block 0 = %#x %#x", b[0], b[1])
	}
	if b[2] != 17<<4&0xff || b[3] != 17>>4 {
		t.Fatalf("block 1 = %#x %#x", b[2], b[3])
	}
	if b[4] != 0 || b[5] != 0 {
		t.Fatal("block 2 should be air")
	}
}

func TestLight(t *testing.T) {
	var l Light
	l.Set(0, 15)
	l.Set(1, 7)
	l.Set(4095, 3)
	if l.Get(0) != 15 || l.Get(1) != 7 || l.Get(4095) != 3 {
		t.Fatalf("light nibbles misread: %d %d %d", l.Get(0), l.Get(1), l.Get(4095))
	}
	if l[0] != 0x7f {
		t.Fatalf("packed byte = %#x, want 0x7f", l[0])
	}
}

func TestColumnBitMap(t *testing.T) {
	c := NewColumn(0, 0)
	c.Section(0)
	c.Section(3)
	if got := c.BitMap(); got != 0b1001 {
		t.Fatalf("BitMap = %#b, want 0b1001", got)
	}
}
