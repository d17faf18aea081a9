package codec

import (
	"gatewire/internal/canon"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

func toTCPSpawnEntity(c *canon.SpawnEntity, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	ty := int32(conv.EntityToOld(c.Ty, ver.Block()))
	if ver >= version.V1_19 {
		p := newPacket(idSpawnObject, ver)
		p.WriteVarInt(c.EID)
		p.WriteBytes(c.ID[:])
		p.WriteVarInt(ty)
		p.WriteF64(c.X)
		p.WriteF64(c.Y)
		p.WriteF64(c.Z)
		p.WriteByte(byte(c.Pitch))
		p.WriteByte(byte(c.Yaw))
		p.WriteByte(byte(c.HeadYaw))
		p.WriteVarInt(c.Data)
		p.WriteI16(c.VelX)
		p.WriteI16(c.VelY)
		p.WriteI16(c.VelZ)
		return one(p), nil
	}

	var spawn *mcnet.Packet
	if c.Living {
		spawn = newPacket(idSpawnMob, ver)
		spawn.WriteVarInt(c.EID)
		if ver >= version.V1_9 {
			spawn.WriteBytes(c.ID[:])
		}
		if ver >= version.V1_12 {
			spawn.WriteVarInt(ty)
		} else {
			spawn.WriteByte(byte(ty))
		}
		if ver < version.V1_9 {
			spawn.WriteI32(int32(c.X * 32))
			spawn.WriteI32(int32(c.Y * 32))
			spawn.WriteI32(int32(c.Z * 32))
		} else {
			spawn.WriteF64(c.X)
			spawn.WriteF64(c.Y)
			spawn.WriteF64(c.Z)
		}
		spawn.WriteByte(byte(c.Yaw))
		spawn.WriteByte(byte(c.Pitch))
		spawn.WriteByte(byte(c.HeadYaw))
		spawn.WriteI16(c.VelX)
		spawn.WriteI16(c.VelY)
		spawn.WriteI16(c.VelZ)
		if ver < version.V1_15 {
			// Spawn mob carries metadata inline before 1.15.
			data := metadataBytes(c.Meta, ver, conv)
			if data == nil {
				data = emptyMetadata(ver)
			}
			spawn.WriteBytes(data)
			return one(spawn), nil
		}
	} else {
		spawn = newPacket(idSpawnObject, ver)
		spawn.WriteVarInt(c.EID)
		if ver >= version.V1_9 {
			spawn.WriteBytes(c.ID[:])
		}
		if ver >= version.V1_14 {
			spawn.WriteVarInt(ty)
		} else {
			// 1.8-1.13 spawn objects use their own numeric taxonomy.
			obj, ok := convert.ObjectID(c.Ty)
			if !ok {
				return nil, ErrNotObject(c.Ty)
			}
			spawn.WriteByte(byte(obj))
		}
		if ver < version.V1_9 {
			spawn.WriteI32(int32(c.X * 32))
			spawn.WriteI32(int32(c.Y * 32))
			spawn.WriteI32(int32(c.Z * 32))
		} else {
			spawn.WriteF64(c.X)
			spawn.WriteF64(c.Y)
			spawn.WriteF64(c.Z)
		}
		spawn.WriteByte(byte(c.Pitch))
		spawn.WriteByte(byte(c.Yaw))
		spawn.WriteI32(c.Data)
		spawn.WriteI16(c.VelX)
		spawn.WriteI16(c.VelY)
		spawn.WriteI16(c.VelZ)
	}

	if data := metadataBytes(c.Meta, ver, conv); data != nil {
		meta := newPacket(idEntityMetadata, ver)
		meta.WriteVarInt(c.EID)
		meta.WriteBytes(data)
		return []*mcnet.Packet{spawn, meta}, nil
	}
	return one(spawn), nil
}

// emptyMetadata is the smallest valid metadata blob: just the terminator.
func emptyMetadata(ver version.ProtocolVersion) []byte {
	if ver < version.V1_9 {
		return []byte{0x7f}
	}
	return []byte{0xff}
}

func toTCPSpawnPlayer(c *canon.SpawnPlayer, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	p := newPacket(idSpawnPlayer, ver)
	p.WriteVarInt(c.EID)
	p.WriteBytes(c.ID[:])
	if ver < version.V1_9 {
		p.WriteI32(int32(c.X * 32))
		p.WriteI32(int32(c.Y * 32))
		p.WriteI32(int32(c.Z * 32))
	} else {
		p.WriteF64(c.X)
		p.WriteF64(c.Y)
		p.WriteF64(c.Z)
	}
	p.WriteByte(byte(c.Yaw))
	p.WriteByte(byte(c.Pitch))
	if ver < version.V1_9 {
		p.WriteI16(0) // held item
	}
	if ver < version.V1_15 {
		data := metadataBytes(c.Meta, ver, conv)
		if data == nil {
			data = emptyMetadata(ver)
		}
		p.WriteBytes(data)
		return one(p), nil
	}
	if data := metadataBytes(c.Meta, ver, conv); data != nil {
		meta := newPacket(idEntityMetadata, ver)
		meta.WriteVarInt(c.EID)
		meta.WriteBytes(data)
		return []*mcnet.Packet{p, meta}, nil
	}
	return one(p), nil
}

func toTCPPlayerList(c *canon.PlayerList, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if ver >= version.V1_19_3 {
		return playerList19_3(c, ver)
	}
	p := newPacket(idPlayerListItem, ver)
	p.WriteVarInt(int32(c.Action))
	p.WriteVarInt(int32(len(c.Players)))
	for _, e := range c.Players {
		p.WriteBytes(e.ID[:])
		switch c.Action {
		case canon.PlayerListAdd:
			p.WriteString(e.Name)
			p.WriteVarInt(0) // properties
			p.WriteVarInt(int32(e.GameMode))
			p.WriteVarInt(e.Ping)
			p.WriteBool(false) // no display name
			if ver >= version.V1_19 {
				p.WriteBool(false) // no sig data
			}
		case canon.PlayerListUpdateGameMode:
			p.WriteVarInt(int32(e.GameMode))
		case canon.PlayerListUpdateLatency:
			p.WriteVarInt(e.Ping)
		case canon.PlayerListUpdateDisplayName:
			p.WriteBool(false)
		case canon.PlayerListRemove:
			// UUID only.
		}
	}
	return one(p), nil
}

// playerList19_3 emits the 1.19.3 shape: removal is its own packet and the
// update action is a bit set.
func playerList19_3(c *canon.PlayerList, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if c.Action == canon.PlayerListRemove {
		p := mcnet.NewPacket(cbPacketIDs[idPlayerRemove][g19])
		p.WriteVarInt(int32(len(c.Players)))
		for _, e := range c.Players {
			p.WriteBytes(e.ID[:])
		}
		return one(p), nil
	}
	p := newPacket(idPlayerListItem, ver)
	var mask uint8
	switch c.Action {
	case canon.PlayerListAdd:
		mask = 0x01 | 0x04 | 0x08 | 0x10 // add, gamemode, listed, latency
	case canon.PlayerListUpdateGameMode:
		mask = 0x04
	case canon.PlayerListUpdateLatency:
		mask = 0x10
	case canon.PlayerListUpdateDisplayName:
		mask = 0x20
	}
	p.WriteByte(mask)
	p.WriteVarInt(int32(len(c.Players)))
	for _, e := range c.Players {
		p.WriteBytes(e.ID[:])
		if mask&0x01 != 0 {
			p.WriteString(e.Name)
			p.WriteVarInt(0) // properties
		}
		if mask&0x04 != 0 {
			p.WriteVarInt(int32(e.GameMode))
		}
		if mask&0x08 != 0 {
			p.WriteBool(true) // listed
		}
		if mask&0x10 != 0 {
			p.WriteVarInt(e.Ping)
		}
		if mask&0x20 != 0 {
			p.WriteBool(false) // no display name
		}
	}
	return one(p), nil
}
