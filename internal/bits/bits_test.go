package bits

import "testing"

func TestArrayGetSet(t *testing.T) {
	for bpe := uint(4); bpe <= 16; bpe++ {
		a := New(bpe)
		max := uint32(1) << bpe
		for i := 0; i < Entries; i++ {
			a.Set(i, uint32(i)%max)
		}
		for i := 0; i < Entries; i++ {
			if got := a.Get(i); got != uint32(i)%max {
				t.Fatalf("bpe %d: Get(%d) = %d, want %d", bpe, i, got, uint32(i)%max)
			}
		}
	}
}

func TestArrayTruncatesValue(t *testing.T) {
	a := New(4)
	a.Set(0, 0x1f)
	if got := a.Get(0); got != 0xf {
		t.Errorf("Get(0) = %#x, want 0xf", got)
	}
	if got := a.Get(1); got != 0 {
		t.Errorf("Get(1) = %#x, want 0 (neighbor must be untouched)", got)
	}
}

func TestArrayNoOverflowPadding(t *testing.T) {
	// bpe 5 packs 12 entries per word; the top 4 bits of every word stay zero.
	a := New(5)
	for i := 0; i < Entries; i++ {
		a.Set(i, 0x1f)
	}
	for i, w := range a.data {
		if w>>60 != 0 {
			t.Fatalf("word %d has high bits set: %#x", i, w)
		}
	}
	// 4096 entries at 12 per word is 342 words.
	if len(a.data) != 342 {
		t.Fatalf("len(data) = %d, want 342", len(a.data))
	}
}

func TestArrayWiden(t *testing.T) {
	a := New(4)
	for i := 0; i < Entries; i++ {
		a.Set(i, uint32(i)%16)
	}
	if err := a.Widen(1); err != nil {
		t.Fatal(err)
	}
	if a.BPE() != 5 {
		t.Fatalf("BPE = %d, want 5", a.BPE())
	}
	for i := 0; i < Entries; i++ {
		if got := a.Get(i); got != uint32(i)%16 {
			t.Fatalf("after widen: Get(%d) = %d, want %d", i, got, uint32(i)%16)
		}
	}
}

func TestArrayWidenTooFar(t *testing.T) {
	a := New(30)
	if err := a.Widen(2); err == nil {
		t.Error("widening past 31 bits should fail")
	}
}

func TestArrayShiftAllAbove(t *testing.T) {
	a := New(4)
	a.Set(0, 1)
	a.Set(1, 2)
	a.Set(2, 3)
	a.Set(3, 2)
	a.ShiftAllAbove(1, 1)
	want := []uint32{1, 3, 4, 3}
	for i, w := range want {
		if got := a.Get(i); got != w {
			t.Errorf("Get(%d) = %d, want %d", i, got, w)
		}
	}
	a.ShiftAllAbove(2, -1)
	want = []uint32{1, 2, 3, 2}
	for i, w := range want {
		if got := a.Get(i); got != w {
			t.Errorf("after shift down: Get(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestArrayFill(t *testing.T) {
	a := New(5)
	a.Fill(7)
	for i := 0; i < Entries; i++ {
		if got := a.Get(i); got != 7 {
			t.Fatalf("Get(%d) = %d, want 7", i, got)
		}
	}
	a.Fill(0)
	for _, w := range a.data {
		if w != 0 {
			t.Fatal("Fill(0) must zero every word")
		}
	}
}

func TestOldArrayGolden(t *testing.T) {
	// Golden values for the wrapping layout at bpe 4 and 5.
	a := NewOld(4)
	a.Set(0, 0xf)
	if a.data[0] != 0xf {
		t.Errorf("data[0] = %#x, want 0xf", a.data[0])
	}
	a.Set(2, 0xf)
	if a.data[0] != 0xf0f {
		t.Errorf("data[0] = %#x, want 0xf0f", a.data[0])
	}
	a.Set(15, 0xf)
	if a.data[0] != 0xf000000000000f0f {
		t.Errorf("data[0] = %#x, want 0xf000000000000f0f", a.data[0])
	}
	a.Set(15, 0x3)
	if a.data[0] != 0x3000000000000f0f {
		t.Errorf("data[0] = %#x, want 0x3000000000000f0f", a.data[0])
	}

	b := NewOld(5)
	b.Set(0, 0x1f)
	b.Set(2, 0x1f)
	// Entry 12 straddles words 0 and 1.
	b.Set(12, 0x1f)
	v := uint64(0x1f)
	if b.data[0] != v<<60|v<<10|v {
		t.Errorf("data[0] = %#x", b.data[0])
	}
	if b.data[1] != v>>4 {
		t.Errorf("data[1] = %#x", b.data[1])
	}
	b.Set(25, 0x1f)
	if b.data[1] != v<<61|v>>4 {
		t.Errorf("data[1] = %#x", b.data[1])
	}
	if b.data[2] != v>>3 {
		t.Errorf("data[2] = %#x", b.data[2])
	}
}

func TestOldArrayRoundTrip(t *testing.T) {
	for bpe := uint(4); bpe <= 13; bpe++ {
		a := NewOld(bpe)
		max := uint32(1) << bpe
		for i := 0; i < Entries; i++ {
			a.Set(i, uint32(i*7)%max)
		}
		for i := 0; i < Entries; i++ {
			if got := a.Get(i); got != uint32(i*7)%max {
				t.Fatalf("bpe %d: Get(%d) = %d, want %d", bpe, i, got, uint32(i*7)%max)
			}
		}
	}
}

func TestOldArrayAllOnes(t *testing.T) {
	data := make([]uint64, Entries*5/64)
	for i := range data {
		data[i] = ^uint64(0)
	}
	a, err := OldFromData(5, data)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < Entries; i++ {
		if got := a.Get(i); got != 31 {
			t.Fatalf("Get(%d) = %d, want 31", i, got)
		}
	}
}

func TestOldFromDataLength(t *testing.T) {
	if _, err := OldFromData(4, make([]uint64, 255)); err == nil {
		t.Error("short data must be rejected")
	}
	if _, err := OldFromData(4, make([]uint64, 256)); err != nil {
		t.Errorf("valid data rejected: %v", err)
	}
}
