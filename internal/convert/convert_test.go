package convert

import (
	"testing"

	"gatewire/internal/canon"
	"gatewire/internal/version"
)

func TestBlockRoundTrip(t *testing.T) {
	c := New()
	for _, bv := range []version.BlockVersion{version.Block1_8, version.Block1_12, version.Block1_16} {
		for cur := uint32(1); cur < uint32(len(blockToOld)); cur++ {
			old := c.BlockToOld(cur, bv)
			if old == 0 {
				continue
			}
			back := c.BlockToNew(old, bv)
			// Several current states collapse onto one legacy state; the
			// reverse table must return the lowest preimage, which must map
			// forward to the same legacy state.
			if c.BlockToOld(back, bv) != old {
				t.Errorf("bv %d: %d -> %d -> %d breaks round trip", bv, cur, old, back)
			}
		}
	}
}

func TestBlockIdentityAtLatest(t *testing.T) {
	c := New()
	for cur := uint32(0); cur < uint32(len(blockToOld)); cur++ {
		if got := c.BlockToOld(cur, version.Block1_19); got != cur {
			t.Fatalf("BlockToOld(%d, 1.19) = %d, want identity", cur, got)
		}
	}
}

func TestBlockUnknownIsAir(t *testing.T) {
	c := New()
	if got := c.BlockToOld(1<<20, version.Block1_8); got != 0 {
		t.Errorf("unknown state = %d, want 0", got)
	}
}

func TestItemDamage(t *testing.T) {
	c := New()
	// Granite is stone:1 on 1.8.
	id, damage := c.ItemToOld(2, version.Block1_8)
	if id != 1 || damage != 1 {
		t.Errorf("granite on 1.8 = %d:%d, want 1:1", id, damage)
	}
	// On 1.13+ it has its own ID and no damage.
	id, damage = c.ItemToOld(2, version.Block1_13)
	if id != 2 || damage != 0 {
		t.Errorf("granite on 1.13 = %d:%d, want 2:0", id, damage)
	}
}

func TestConvertStack(t *testing.T) {
	c := New()
	it := canon.Item{ID: 2, Count: 3}
	c.ConvertStack(&it, version.Block1_8)
	if it.ID != 1 || it.Damage != 1 || it.Count != 3 {
		t.Errorf("stack = %+v", it)
	}
	// Empty stacks stay untouched.
	empty := canon.Item{}
	c.ConvertStack(&empty, version.Block1_8)
	if empty.ID != 0 {
		t.Errorf("empty stack mutated: %+v", empty)
	}
}

func TestObjectID(t *testing.T) {
	tests := []struct {
		entity uint32
		want   int32
	}{
		{41, 1},  // boat
		{42, 10}, // minecart
		{10, 60}, // arrow
		{30, 78}, // armor stand
	}
	for _, tt := range tests {
		got, ok := ObjectID(tt.entity)
		if !ok || got != tt.want {
			t.Errorf("ObjectID(%d) = %d, %v; want %d", tt.entity, got, ok, tt.want)
		}
	}
	if _, ok := ObjectID(9999); ok {
		t.Error("unmapped entity must not resolve to an object ID")
	}
}

func TestWindowID(t *testing.T) {
	if id, ok := WindowID("minecraft:generic_9x3"); !ok || id != 2 {
		t.Errorf("generic_9x3 = %d, %v", id, ok)
	}
	if id, ok := WindowID("minecraft:brewing_stand"); !ok || id != 10 {
		t.Errorf("brewing_stand = %d, %v", id, ok)
	}
	if _, ok := WindowID("minecraft:not_a_window"); ok {
		t.Error("unknown window type must not resolve")
	}
}

func TestOldWindow(t *testing.T) {
	kind, slots := OldWindow("minecraft:generic_9x3")
	if kind != "minecraft:chest" || slots != 27 {
		t.Errorf("generic_9x3 = %s/%d", kind, slots)
	}
	kind, slots = OldWindow("minecraft:smithing")
	if kind != "minecraft:container" || slots != 27 {
		t.Errorf("fallback = %s/%d", kind, slots)
	}
}

func TestParticleDrop(t *testing.T) {
	c := New()
	// barrier does not exist on 1.8.
	if _, ok := c.ParticleToOld(2, version.Block1_8); ok {
		t.Error("barrier should not convert to 1.8")
	}
	if old, ok := c.ParticleToOld(4, version.Block1_8); !ok || old != 4 {
		t.Errorf("bubble = %d, %v", old, ok)
	}
}
