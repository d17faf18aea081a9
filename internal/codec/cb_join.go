package codec

import (
	"gatewire/internal/canon"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

const overworld = "minecraft:overworld"

// dimensionElement writes the dimension-type compound body shared by the
// registry entry and the inline dimension field.
func dimensionElement(b *nbtBuf, ver version.ProtocolVersion, minY int32, height uint32) {
	b.putByte("piglin_safe", 0)
	b.putByte("natural", 1)
	b.putFloat("ambient_light", 0)
	b.putString("infiniburn", "minecraft:infiniburn_overworld")
	b.putByte("respawn_anchor_works", 0)
	b.putByte("has_skylight", 1)
	b.putByte("bed_works", 1)
	b.putString("effects", overworld)
	b.putByte("has_raids", 1)
	if ver >= version.V1_17 {
		b.putInt("min_y", minY)
		b.putInt("height", int32(height))
	}
	b.putInt("logical_height", 256)
	b.putDouble("coordinate_scale", 1)
	b.putByte("ultrawarm", 0)
	b.putByte("has_ceiling", 0)
}

// registryCodec builds the NBT "dimension codec" 1.16+ clients require in
// JoinGame: one overworld dimension type and one plains biome.
func registryCodec(ver version.ProtocolVersion, minY int32, height uint32) []byte {
	var b nbtBuf
	b.putCompound("")
	b.putCompound("minecraft:dimension_type")
	b.putString("type", "minecraft:dimension_type")
	b.putCompoundList("value", 1, func(int) {
		b.putString("name", overworld)
		b.putInt("id", 0)
		b.putCompound("element")
		dimensionElement(&b, ver, minY, height)
		b.end()
	})
	b.end()
	b.putCompound("minecraft:worldgen/biome")
	b.putString("type", "minecraft:worldgen/biome")
	b.putCompoundList("value", 1, func(int) {
		b.putString("name", "minecraft:plains")
		b.putInt("id", 0)
		b.putCompound("element")
		b.putString("precipitation", "rain")
		b.putFloat("temperature", 0.8)
		b.putFloat("downfall", 0.4)
		b.putString("category", "plains")
		b.putCompound("effects")
		b.putInt("sky_color", 0x78a7ff)
		b.putInt("water_fog_color", 0x050533)
		b.putInt("fog_color", 0xc0d8ff)
		b.putInt("water_color", 0x3f76e4)
		b.end()
		b.end()
	})
	b.end()
	b.end()
	return b.Bytes()
}

// inlineDimension is the dimension compound 1.16.2-1.18 clients expect
// between the codec and the world name.
func inlineDimension(ver version.ProtocolVersion, minY int32, height uint32) []byte {
	var b nbtBuf
	b.putCompound("")
	dimensionElement(&b, ver, minY, height)
	b.end()
	return b.Bytes()
}

func toTCPJoinGame(c *canon.JoinGame, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idJoinGame, ver)
	height := c.WorldHeight
	if height == 0 {
		height = 256
	}

	switch {
	case ver >= version.V1_16:
		p.WriteI32(c.EID)
		if ver >= version.V1_16_2 {
			p.WriteBool(c.HardcoreMode)
		}
		p.WriteByte(c.GameMode)
		p.WriteByte(0xff) // no previous game mode
		p.WriteVarInt(1)
		p.WriteString(overworld)
		p.WriteBytes(registryCodec(ver, c.WorldMinY, height))
		if ver >= version.V1_19 {
			p.WriteString("minecraft:overworld") // dimension type name
		} else {
			p.WriteBytes(inlineDimension(ver, c.WorldMinY, height))
		}
		p.WriteString(overworld)
		p.WriteU64(0) // hashed seed
		p.WriteVarInt(0)
		p.WriteVarInt(int32(c.ViewDistance))
		if ver >= version.V1_18 {
			p.WriteVarInt(int32(c.ViewDistance)) // simulation distance
		}
		p.WriteBool(c.ReducedDebugInfo)
		p.WriteBool(c.EnableRespawnScreen)
		p.WriteBool(false) // is debug
		p.WriteBool(false) // is flat
		if ver >= version.V1_19 {
			p.WriteBool(false) // no last death location
		}
	case ver >= version.V1_15:
		p.WriteI32(c.EID)
		p.WriteByte(c.GameMode)
		p.WriteI32(int32(c.Dimension))
		p.WriteU64(0) // hashed seed
		p.WriteByte(0)
		p.WriteString("default")
		p.WriteVarInt(int32(c.ViewDistance))
		p.WriteBool(c.ReducedDebugInfo)
		p.WriteBool(c.EnableRespawnScreen)
	case ver >= version.V1_14:
		p.WriteI32(c.EID)
		p.WriteByte(c.GameMode)
		p.WriteI32(int32(c.Dimension))
		p.WriteByte(0)
		p.WriteString("default")
		p.WriteVarInt(int32(c.ViewDistance))
		p.WriteBool(c.ReducedDebugInfo)
	case ver >= version.V1_9_2:
		p.WriteI32(c.EID)
		p.WriteByte(c.GameMode)
		p.WriteI32(int32(c.Dimension))
		p.WriteByte(c.Difficulty)
		p.WriteByte(0)
		p.WriteString(levelType(c.LevelType))
		p.WriteBool(c.ReducedDebugInfo)
	default:
		// 1.8-1.9.0 use a single byte for the dimension.
		p.WriteI32(c.EID)
		p.WriteByte(c.GameMode)
		p.WriteByte(byte(c.Dimension))
		p.WriteByte(c.Difficulty)
		p.WriteByte(0)
		p.WriteString(levelType(c.LevelType))
		p.WriteBool(c.ReducedDebugInfo)
	}
	return one(p), nil
}

func levelType(t string) string {
	if t == "" {
		return "default"
	}
	return t
}
