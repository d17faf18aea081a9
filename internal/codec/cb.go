package codec

import (
	"gatewire/internal/canon"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

// posLong writes a block position in the long form the version expects. The
// y/z packing swapped places in 1.14.
func posLong(p *mcnet.Packet, pos canon.Pos, ver version.ProtocolVersion) {
	if ver >= version.V1_14 {
		p.WriteU64(pos.ToLong())
	} else {
		p.WriteU64(pos.ToOldLong())
	}
}

func toTCPAbilities(c *canon.Abilities, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idPlayerAbilities, ver)
	var flags uint8
	if c.Invulnerable {
		flags |= 0x01
	}
	if c.Flying {
		flags |= 0x02
	}
	if c.AllowFlying {
		flags |= 0x04
	}
	if c.InstaBreak {
		flags |= 0x08
	}
	p.WriteByte(flags)
	p.WriteF32(c.FlySpeed * 0.05)
	p.WriteF32(c.WalkSpeed * 0.1)
	return one(p), nil
}

func toTCPAnimation(c *canon.Animation, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idAnimation, ver)
	p.WriteVarInt(c.EID)
	p.WriteByte(c.Kind)
	return one(p), nil
}

func toTCPBlockUpdate(c *canon.BlockUpdate, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idBlockChange, ver)
	posLong(p, c.Pos, ver)
	p.WriteVarInt(int32(c.State))
	return one(p), nil
}

func toTCPChangeGameState(c *canon.ChangeGameState, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idGameStateChange, ver)
	p.WriteByte(c.Action)
	p.WriteF32(c.Value)
	return one(p), nil
}

func toTCPChat(c *canon.Chat, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if ver >= version.V1_19 {
		// 1.19 split chat; everything the backend sends is a system message
		// from the client's point of view.
		p := newPacket(idSystemChat, ver)
		p.WriteString(c.Msg)
		p.WriteBool(c.Ty == 2)
		return one(p), nil
	}
	p := newPacket(idChat, ver)
	p.WriteString(c.Msg)
	p.WriteByte(c.Ty)
	if ver >= version.V1_16 {
		// Sender UUID; zero means "not a player" and skips chat filtering.
		var zero [16]byte
		p.WriteBytes(zero[:])
	}
	return one(p), nil
}

func toTCPChunkUnload(c *canon.ChunkUnload, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if ver < version.V1_9 {
		// 1.8 has no unload packet; an empty full chunk clears the column.
		p := newPacket(idChunkData, ver)
		p.WriteI32(c.X)
		p.WriteI32(c.Z)
		p.WriteBool(true)
		p.WriteU16(0)
		p.WriteVarInt(0)
		return one(p), nil
	}
	p := newPacket(idUnloadChunk, ver)
	p.WriteI32(c.X)
	p.WriteI32(c.Z)
	return one(p), nil
}

func toTCPCollectItem(c *canon.CollectItem, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idCollectItem, ver)
	p.WriteVarInt(c.ItemEID)
	p.WriteVarInt(c.PlayerEID)
	if ver >= version.V1_11 {
		p.WriteVarInt(int32(c.Amount))
	}
	return one(p), nil
}

// parserIDs1_19 maps brigadier parser names to the numeric IDs 1.19 uses
// instead of identifiers.
var parserIDs1_19 = map[string]int32{
	"brigadier:bool":    0,
	"brigadier:float":   1,
	"brigadier:double":  2,
	"brigadier:integer": 3,
	"brigadier:long":    4,
	"brigadier:string":  5,
	"minecraft:entity":  6,
	"minecraft:uuid":    48,
}

func toTCPCommandList(c *canon.CommandList, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if ver < version.V1_13 {
		// No command tree before 1.13; the client free-texts commands.
		return nil, nil
	}
	p := newPacket(idCommandTree, ver)
	p.WriteVarInt(int32(len(c.Nodes)))
	for _, n := range c.Nodes {
		flags := uint8(n.Ty)
		if n.Executable {
			flags |= 0x04
		}
		if n.HasRedirect {
			flags |= 0x08
		}
		if n.Suggestion != "" {
			flags |= 0x10
		}
		p.WriteByte(flags)
		p.WriteVarInt(int32(len(n.Children)))
		for _, child := range n.Children {
			p.WriteVarInt(int32(child))
		}
		if n.HasRedirect {
			p.WriteVarInt(int32(n.Redirect))
		}
		if n.Ty == canon.CommandLiteral || n.Ty == canon.CommandArgument {
			p.WriteString(n.Name)
		}
		if n.Ty == canon.CommandArgument {
			if ver >= version.V1_19 {
				p.WriteVarInt(parserIDs1_19[n.Parser])
			} else {
				p.WriteString(n.Parser)
			}
			p.WriteBytes(n.Properties)
		}
		if n.Suggestion != "" {
			p.WriteString(n.Suggestion)
		}
	}
	p.WriteVarInt(int32(c.Root))
	return one(p), nil
}

func toTCPEntityEquipment(c *canon.EntityEquipment, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityEquipment, ver)
	p.WriteVarInt(c.EID)
	switch {
	case ver < version.V1_9:
		// 1.8 numbers slots 0 held, 1-4 armor; modern has offhand at 1.
		slot := int16(c.Slot)
		if slot >= 2 {
			slot--
		}
		p.WriteI16(slot)
	case ver < version.V1_16:
		p.WriteVarInt(int32(c.Slot))
	default:
		// 1.16 batches equipment; a single entry with the top bit clear.
		p.WriteByte(c.Slot)
	}
	writeItemStack(p, c.Item, ver, conv)
	return one(p), nil
}

func toTCPEntityHeadLook(c *canon.EntityHeadLook, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityHeadLook, ver)
	p.WriteVarInt(c.EID)
	p.WriteByte(byte(c.Yaw))
	return one(p), nil
}

func toTCPEntityLook(c *canon.EntityLook, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityLook, ver)
	p.WriteVarInt(c.EID)
	p.WriteByte(byte(c.Yaw))
	p.WriteByte(byte(c.Pitch))
	p.WriteBool(c.OnGround)
	return one(p), nil
}

func toTCPEntityMetadata(c *canon.EntityMetadata, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	data := metadataBytes(c.Meta, ver, conv)
	if data == nil {
		return nil, nil
	}
	p := newPacket(idEntityMetadata, ver)
	p.WriteVarInt(c.EID)
	p.WriteBytes(data)
	return one(p), nil
}

func toTCPEntityMove(c *canon.EntityMove, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityRelMove, ver)
	p.WriteVarInt(c.EID)
	if ver < version.V1_9 {
		// Canonical deltas are position * 4096; 1.8 wants * 32.
		p.WriteByte(byte(int8(c.X / 128)))
		p.WriteByte(byte(int8(c.Y / 128)))
		p.WriteByte(byte(int8(c.Z / 128)))
	} else {
		p.WriteI16(c.X)
		p.WriteI16(c.Y)
		p.WriteI16(c.Z)
	}
	p.WriteBool(c.OnGround)
	return one(p), nil
}

func toTCPEntityMoveLook(c *canon.EntityMoveLook, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityLookMove, ver)
	p.WriteVarInt(c.EID)
	if ver < version.V1_9 {
		p.WriteByte(byte(int8(c.X / 128)))
		p.WriteByte(byte(int8(c.Y / 128)))
		p.WriteByte(byte(int8(c.Z / 128)))
	} else {
		p.WriteI16(c.X)
		p.WriteI16(c.Y)
		p.WriteI16(c.Z)
	}
	p.WriteByte(byte(c.Yaw))
	p.WriteByte(byte(c.Pitch))
	p.WriteBool(c.OnGround)
	return one(p), nil
}

func toTCPEntityPos(c *canon.EntityPos, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityTeleport, ver)
	p.WriteVarInt(c.EID)
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
	p.WriteBool(c.OnGround)
	return one(p), nil
}

func toTCPEntityStatus(c *canon.EntityStatus, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityStatus, ver)
	p.WriteI32(c.EID)
	p.WriteByte(c.Status)
	return one(p), nil
}

func toTCPEntityVelocity(c *canon.EntityVelocity, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idEntityVelocity, ver)
	p.WriteVarInt(c.EID)
	p.WriteI16(c.X)
	p.WriteI16(c.Y)
	p.WriteI16(c.Z)
	return one(p), nil
}

func toTCPKeepAlive(c *canon.KeepAlive, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idKeepAlive, ver)
	if ver < version.V1_12_2 {
		p.WriteVarInt(int32(c.ID))
	} else {
		p.WriteI64(c.ID)
	}
	return one(p), nil
}

func toTCPParticle(c *canon.Particle, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	old, ok := conv.ParticleToOld(uint32(c.ID), ver.Block())
	if !ok {
		return nil, nil
	}
	p := newPacket(idParticle, ver)
	p.WriteI32(int32(old))
	p.WriteBool(c.Long)
	if ver >= version.V1_14 {
		p.WriteF64(c.X)
		p.WriteF64(c.Y)
		p.WriteF64(c.Z)
	} else {
		p.WriteF32(float32(c.X))
		p.WriteF32(float32(c.Y))
		p.WriteF32(float32(c.Z))
	}
	p.WriteF32(float32(c.OffX))
	p.WriteF32(float32(c.OffY))
	p.WriteF32(float32(c.OffZ))
	p.WriteF32(c.DataFloat)
	p.WriteI32(c.Count)
	p.WriteBytes(c.Data)
	return one(p), nil
}

// soundCategories is the 1.9+ sound category enumeration; 1.8 has no
// categories on the wire.
var soundCategories = [...]string{"master", "music", "record", "weather", "block", "hostile", "neutral", "player", "ambient", "voice"}

func toTCPPlaySound(c *canon.PlaySound, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idNamedSoundEffect, ver)
	p.WriteString(c.Name)
	if ver >= version.V1_9 {
		cat := c.Category
		if int(cat) >= len(soundCategories) {
			cat = 0
		}
		p.WriteVarInt(int32(cat))
	}
	p.WriteI32(int32(c.X * 8))
	p.WriteI32(int32(c.Y * 8))
	p.WriteI32(int32(c.Z * 8))
	p.WriteF32(c.Volume)
	if ver < version.V1_9 {
		p.WriteByte(byte(c.Pitch * 63))
	} else {
		p.WriteF32(c.Pitch)
	}
	return one(p), nil
}

func toTCPPlayerHeader(c *canon.PlayerHeader, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idPlayerListHeader, ver)
	p.WriteString(c.Header)
	p.WriteString(c.Footer)
	return one(p), nil
}

func toTCPPluginMessage(c *canon.PluginMessage, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idPluginMessage, ver)
	p.WriteString(c.Channel)
	p.WriteBytes(c.Data)
	return one(p), nil
}

func toTCPRemoveEntities(c *canon.RemoveEntities, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idDestroyEntities, ver)
	p.WriteVarInt(int32(len(c.EIDs)))
	for _, eid := range c.EIDs {
		p.WriteVarInt(eid)
	}
	return one(p), nil
}

func toTCPScoreboardDisplay(c *canon.ScoreboardDisplay, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idScoreboardDisplay, ver)
	p.WriteByte(c.Position)
	p.WriteString(c.Objective)
	return one(p), nil
}

func toTCPScoreboardObjective(c *canon.ScoreboardObjective, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idScoreboardObjective, ver)
	p.WriteString(c.Objective)
	p.WriteByte(c.Mode)
	if c.Mode != 1 { // not remove
		p.WriteString(c.Value)
		if ver < version.V1_13 {
			if c.Ty == 1 {
				p.WriteString("hearts")
			} else {
				p.WriteString("integer")
			}
		} else {
			p.WriteVarInt(int32(c.Ty))
		}
	}
	return one(p), nil
}

func toTCPScoreboardUpdate(c *canon.ScoreboardUpdate, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idScoreboardUpdate, ver)
	p.WriteString(c.Username)
	p.WriteByte(c.Action)
	p.WriteString(c.Objective)
	if c.Action != 1 { // not remove
		p.WriteVarInt(c.Score)
	}
	return one(p), nil
}

func toTCPSetPosLook(c *canon.SetPosLook, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idPlayerPosLook, ver)
	p.WriteF64(c.X)
	p.WriteF64(c.Y)
	p.WriteF64(c.Z)
	p.WriteF32(c.Yaw)
	p.WriteF32(c.Pitch)
	p.WriteByte(c.Flags)
	if ver >= version.V1_9 {
		p.WriteVarInt(int32(c.TeleportID))
	}
	if ver >= version.V1_17_1 && ver < version.V1_19_3 {
		p.WriteBool(c.ShouldDismount)
	}
	return one(p), nil
}

func toTCPTags(c *canon.Tags, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if ver < version.V1_14 {
		// Nothing to tell a pre-tag client.
		return nil, nil
	}
	p := newPacket(idTags, ver)
	p.WriteBytes(c.Blocks)
	p.WriteBytes(c.Items)
	p.WriteBytes(c.Fluids)
	p.WriteBytes(c.Entities)
	return one(p), nil
}

func toTCPTeams(c *canon.Teams, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idTeams, ver)
	p.WriteString(c.Team)
	p.WriteByte(c.Action)
	switch c.Action {
	case 0: // create
		if ver < version.V1_13 {
			p.WriteString(c.Team) // display name
			p.WriteString("")     // prefix
			p.WriteString("")     // suffix
			p.WriteByte(0x03)     // friendly flags
			p.WriteString("always")
			if ver >= version.V1_9 {
				p.WriteString("always") // collision rule
			}
			p.WriteByte(0xff) // color: reset
		} else {
			p.WriteString(canon.Text{Text: c.Team}.JSON())
			p.WriteByte(0x03)
			p.WriteString("always")
			p.WriteString("always")
			p.WriteVarInt(21) // color: reset
			p.WriteString(canon.Text{}.JSON())
			p.WriteString(canon.Text{}.JSON())
		}
		p.WriteVarInt(int32(len(c.Entities)))
		for _, e := range c.Entities {
			p.WriteString(e)
		}
	case 3, 4: // add / remove entities
		p.WriteVarInt(int32(len(c.Entities)))
		for _, e := range c.Entities {
			p.WriteString(e)
		}
	}
	return one(p), nil
}

func toTCPTitle(c *canon.Title, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if ver >= version.V1_17 {
		// 1.17 split the title packet by action.
		switch c.Action {
		case canon.TitleSet:
			p := newPacket(idTitle, ver)
			p.WriteString(c.Text)
			return one(p), nil
		case canon.TitleSubtitle:
			p := newPacket(idSubtitle, ver)
			p.WriteString(c.Text)
			return one(p), nil
		case canon.TitleTimes:
			p := newPacket(idTitleTimes, ver)
			p.WriteI32(int32(c.FadeIn))
			p.WriteI32(int32(c.Stay))
			p.WriteI32(int32(c.FadeOut))
			return one(p), nil
		default:
			// Clear and reset have no 1.17+ equivalent worth forwarding.
			return nil, nil
		}
	}
	p := newPacket(idTitle, ver)
	action := int32(c.Action)
	// 1.11 inserted the action bar at 2, pushing times/clear/reset down.
	if ver >= version.V1_11 && c.Action >= canon.TitleTimes {
		action++
	}
	p.WriteVarInt(action)
	switch c.Action {
	case canon.TitleSet, canon.TitleSubtitle:
		p.WriteString(c.Text)
	case canon.TitleTimes:
		p.WriteI32(int32(c.FadeIn))
		p.WriteI32(int32(c.Stay))
		p.WriteI32(int32(c.FadeOut))
	}
	return one(p), nil
}

func toTCPUpdateHealth(c *canon.UpdateHealth, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idUpdateHealth, ver)
	p.WriteF32(c.Health)
	p.WriteVarInt(c.Food)
	p.WriteF32(c.Saturation)
	return one(p), nil
}

func toTCPUpdateViewPos(c *canon.UpdateViewPos, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	if ver < version.V1_14 {
		return nil, nil
	}
	p := newPacket(idUpdateViewPos, ver)
	p.WriteVarInt(c.X)
	p.WriteVarInt(c.Z)
	return one(p), nil
}

func toTCPWindowItem(c *canon.WindowItem, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	p := newPacket(idSetSlot, ver)
	p.WriteByte(c.WID)
	if ver >= version.V1_17_1 {
		p.WriteVarInt(int32(c.Revision))
	}
	p.WriteI16(c.Slot)
	writeItemStack(p, c.Item, ver, conv)
	return one(p), nil
}

func toTCPWindowItems(c *canon.WindowItems, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	p := newPacket(idWindowItems, ver)
	p.WriteByte(c.WID)
	if ver >= version.V1_17_1 {
		p.WriteVarInt(int32(c.Revision))
		p.WriteVarInt(int32(len(c.Items)))
	} else {
		p.WriteI16(int16(len(c.Items)))
	}
	for _, it := range c.Items {
		writeItemStack(p, it, ver, conv)
	}
	if ver >= version.V1_17_1 {
		writeItemStack(p, c.Held, ver, conv)
	}
	return one(p), nil
}

func toTCPWindowOpen(c *canon.WindowOpen, ver version.ProtocolVersion) ([]*mcnet.Packet, error) {
	p := newPacket(idOpenWindow, ver)
	if ver >= version.V1_14 {
		p.WriteVarInt(int32(c.WID))
		id, ok := convert.WindowID(c.Ty)
		if !ok {
			id = 2 // generic chest
		}
		p.WriteVarInt(id)
		p.WriteString(c.Title)
		return one(p), nil
	}
	kind, slots := convert.OldWindow(c.Ty)
	if c.Size != 0 {
		slots = c.Size
	}
	p.WriteByte(c.WID)
	p.WriteString(kind)
	p.WriteString(c.Title)
	p.WriteByte(slots)
	return one(p), nil
}
