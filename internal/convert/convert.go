// Package convert maps block, item, entity and particle IDs between the
// newest numeric space (the proxy's canonical currency) and the legacy
// spaces of older protocol versions.
//
// The forward tables in the data_*.go files are generated: dense arrays
// indexed by the current ID, one column per block version. Reverse tables
// are derived from them at startup. Converters are immutable after New and
// safe for concurrent use.
package convert

import (
	"gatewire/internal/canon"
	"gatewire/internal/version"
)

type revKey struct {
	bv  version.BlockVersion
	old uint32
}

// Converter owns every conversion table.
type Converter struct {
	blockRev    map[revKey]uint32
	itemRev     map[revKey]int32
	entityRev   map[revKey]uint32
	particleRev map[revKey]uint32
}

// New builds the reverse tables and returns the process-wide converter.
func New() *Converter {
	c := &Converter{
		blockRev:    make(map[revKey]uint32),
		itemRev:     make(map[revKey]int32),
		entityRev:   make(map[revKey]uint32),
		particleRev: make(map[revKey]uint32),
	}
	for cur, row := range blockToOld {
		for bv, old := range row {
			k := revKey{version.BlockVersion(bv), old}
			// First writer wins: several new states collapse onto one legacy
			// state, and the lowest current ID is the canonical preimage.
			if _, ok := c.blockRev[k]; !ok {
				c.blockRev[k] = uint32(cur)
			}
		}
	}
	for cur, row := range itemToOld {
		for bv, old := range row {
			k := revKey{version.BlockVersion(bv), uint32(old.ID)}
			if _, ok := c.itemRev[k]; !ok {
				c.itemRev[k] = int32(cur)
			}
		}
	}
	for cur, row := range entityToOld {
		for bv, old := range row {
			k := revKey{version.BlockVersion(bv), old}
			if _, ok := c.entityRev[k]; !ok {
				c.entityRev[k] = uint32(cur)
			}
		}
	}
	for cur, row := range particleToOld {
		for bv, old := range row {
			k := revKey{version.BlockVersion(bv), old}
			if _, ok := c.particleRev[k]; !ok {
				c.particleRev[k] = uint32(cur)
			}
		}
	}
	return c
}

// BlockToOld converts a current block state to the version's legacy state.
// For 1.8 the returned value folds the metadata into the low four bits.
// Unknown states map to 0 (air), which keeps chunk translation total.
func (c *Converter) BlockToOld(current uint32, bv version.BlockVersion) uint32 {
	if int(current) >= len(blockToOld) {
		return 0
	}
	return blockToOld[current][bv]
}

// BlockToNew converts a legacy block state back to the current space.
func (c *Converter) BlockToNew(old uint32, bv version.BlockVersion) uint32 {
	return c.blockRev[revKey{bv, old}]
}

// ItemToOld converts a current item ID, returning the legacy ID and the
// damage value 1.8-era clients encode alongside it.
func (c *Converter) ItemToOld(current int32, bv version.BlockVersion) (int32, int16) {
	if current < 0 || int(current) >= len(itemToOld) {
		return 0, 0
	}
	e := itemToOld[current][bv]
	return e.ID, e.Damage
}

// ItemToNew converts a legacy item ID back to the current space. The damage
// argument is not consulted: the reverse table is keyed by legacy ID alone,
// so the lowest current ID sharing that legacy ID is returned.
func (c *Converter) ItemToNew(old int32, _ int16, bv version.BlockVersion) int32 {
	return c.itemRev[revKey{bv, uint32(old)}]
}

// EntityToOld converts a current entity type to the version's numeric type.
func (c *Converter) EntityToOld(current uint32, bv version.BlockVersion) uint32 {
	if int(current) >= len(entityToOld) {
		return 0
	}
	return entityToOld[current][bv]
}

// EntityToNew converts a legacy entity type back to the current space.
func (c *Converter) EntityToNew(old uint32, bv version.BlockVersion) uint32 {
	return c.entityRev[revKey{bv, old}]
}

// ParticleToOld converts a current particle ID. The second return is false
// when the version has no equivalent particle; callers drop the packet.
func (c *Converter) ParticleToOld(current uint32, bv version.BlockVersion) (uint32, bool) {
	if int(current) >= len(particleToOld) {
		return 0, false
	}
	old := particleToOld[current][bv]
	if old == particleNone {
		return 0, false
	}
	return old, true
}

// ConvertStack rewrites an item stack in place for serialization to the
// given version: the ID moves to the legacy space and, for 1.8-era clients,
// the damage value is filled in.
func (c *Converter) ConvertStack(it *canon.Item, bv version.BlockVersion) {
	if it.Empty() {
		return
	}
	id, damage := c.ItemToOld(it.ID, bv)
	it.ID = id
	if bv <= version.Block1_12 {
		it.Damage = damage
	}
}

// ObjectID maps a modern entity type to the separate 1.8 "spawn object" taxonomy
// that version uses for non-living entities. The mapping is total over the
// object entities; ok is false for anything else, which callers must treat
// as a programming error.
func ObjectID(entity uint32) (int32, bool) {
	id, ok := objectIDs[entity]
	return id, ok
}

// WindowID maps a modern container type name to the 1.14+ enumerated menu
// ID.
func WindowID(ty string) (int32, bool) {
	id, ok := windowIDs[ty]
	return id, ok
}

// OldWindow maps a modern container type name to the 1.8 inventory-type
// string and slot count.
func OldWindow(ty string) (kind string, slots uint8) {
	if w, ok := oldWindows[ty]; ok {
		return w.kind, w.slots
	}
	return "minecraft:container", 27
}
