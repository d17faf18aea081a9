package codec

import (
	"gatewire/internal/canon"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

// FromTCP parses one legacy server-bound play packet into its canonical
// form. ok is false when the packet has no canonical equivalent; the caller
// drops it with a warning. An error means the payload was malformed.
func FromTCP(p *mcnet.Packet, ver version.ProtocolVersion, conv *convert.Converter) (sb canon.SB, ok bool, err error) {
	shape, known := sbShapeFor(p.ID, groupOf(ver))
	if !known {
		return nil, false, nil
	}
	defer func() {
		if err == nil && p.Err() != nil {
			sb, ok, err = nil, false, p.Err()
		}
	}()

	switch shape {
	case sbKeepAlive:
		if ver < version.V1_12_2 {
			return &canon.SBKeepAlive{ID: int64(p.ReadVarInt())}, true, nil
		}
		return &canon.SBKeepAlive{ID: p.ReadI64()}, true, nil

	case sbChatMessage:
		return &canon.SBChat{Msg: p.ReadString(256)}, true, nil

	case sbPlayer:
		return &canon.Flying{Flying: p.ReadBool()}, true, nil

	case sbPlayerPos:
		out := &canon.PlayerPos{X: p.ReadF64(), Y: p.ReadF64(), Z: p.ReadF64()}
		out.OnGround = p.ReadBool()
		return out, true, nil

	case sbPlayerPosLook:
		out := &canon.PlayerPosLook{X: p.ReadF64(), Y: p.ReadF64(), Z: p.ReadF64()}
		out.Yaw = p.ReadF32()
		out.Pitch = p.ReadF32()
		out.OnGround = p.ReadBool()
		return out, true, nil

	case sbPlayerLook:
		out := &canon.PlayerLook{Yaw: p.ReadF32(), Pitch: p.ReadF32()}
		out.OnGround = p.ReadBool()
		return out, true, nil

	case sbBlockDig:
		out := &canon.BlockDig{}
		if ver < version.V1_9 {
			out.Status = p.ReadByte()
			out.Pos = readPosLong(p, ver)
			out.Face = p.ReadByte()
		} else {
			out.Status = uint8(p.ReadVarInt())
			out.Pos = readPosLong(p, ver)
			out.Face = p.ReadByte()
		}
		return out, true, nil

	case sbBlockPlace:
		out := &canon.BlockPlace{}
		switch {
		case ver < version.V1_9:
			out.Pos = readPosLong(p, ver)
			out.Face = p.ReadByte()
			skipItemStack(p, ver) // held item copy; the backend knows better
			out.CursorX = float32(p.ReadByte()) / 16
			out.CursorY = float32(p.ReadByte()) / 16
			out.CursorZ = float32(p.ReadByte()) / 16
		case ver < version.V1_14:
			out.Pos = readPosLong(p, ver)
			out.Face = uint8(p.ReadVarInt())
			out.Hand = uint8(p.ReadVarInt())
			if ver < version.V1_11 {
				out.CursorX = float32(p.ReadByte()) / 16
				out.CursorY = float32(p.ReadByte()) / 16
				out.CursorZ = float32(p.ReadByte()) / 16
			} else {
				out.CursorX = p.ReadF32()
				out.CursorY = p.ReadF32()
				out.CursorZ = p.ReadF32()
			}
		default:
			out.Hand = uint8(p.ReadVarInt())
			out.Pos = readPosLong(p, ver)
			out.Face = uint8(p.ReadVarInt())
			out.CursorX = p.ReadF32()
			out.CursorY = p.ReadF32()
			out.CursorZ = p.ReadF32()
			p.ReadBool() // inside block
		}
		return out, true, nil

	case sbHeldItem:
		return &canon.ChangeHeldItem{Slot: uint8(p.ReadI16())}, true, nil

	case sbSwingArm:
		out := &canon.SwingArm{}
		if ver >= version.V1_9 {
			out.Hand = uint8(p.ReadVarInt())
		}
		return out, true, nil

	case sbUseEntity:
		out := &canon.UseEntity{EID: p.ReadVarInt()}
		out.Action = uint8(p.ReadVarInt())
		if out.Action == 2 { // interact at
			p.ReadF32()
			p.ReadF32()
			p.ReadF32()
		}
		if ver >= version.V1_9 && out.Action != 1 {
			p.ReadVarInt() // hand
		}
		if ver >= version.V1_16 {
			out.Sneaking = p.ReadBool()
		}
		return out, true, nil

	case sbUseItem:
		return &canon.UseItem{Hand: uint8(p.ReadVarInt())}, true, nil

	case sbClickWindow:
		out := &canon.ClickWindow{WID: p.ReadByte()}
		if ver >= version.V1_17_1 {
			p.ReadVarInt() // state id
		}
		out.Slot = p.ReadI16()
		out.Button = p.ReadByte()
		if ver < version.V1_17 {
			p.ReadI16() // action number
		}
		if ver < version.V1_9 {
			out.Mode = p.ReadByte()
		} else {
			out.Mode = uint8(p.ReadVarInt())
		}
		if ver >= version.V1_17_1 {
			// Changed-slots array precedes the carried item.
			n := p.ReadVarInt()
			for i := int32(0); i < n; i++ {
				p.ReadI16()
				skipItemStack(p, ver)
			}
		}
		out.Item = readItemStack(p, ver, conv)
		return out, true, nil

	case sbCloseWindow:
		return &canon.CloseWindow{WID: p.ReadByte()}, true, nil

	case sbCreativeSlot:
		out := &canon.CreativeSlot{Slot: p.ReadI16()}
		out.Item = readItemStack(p, ver, conv)
		return out, true, nil

	case sbEntityAction:
		out := &canon.PlayerCommand{EID: p.ReadVarInt()}
		out.Action = uint8(p.ReadVarInt())
		p.ReadVarInt() // jump boost
		return out, true, nil

	case sbPluginMessage:
		out := &canon.SBPluginMessage{Channel: p.ReadString(128)}
		rest := p.Remaining()
		if len(rest) > 0 {
			out.Data = append([]byte(nil), rest...)
		}
		return out, true, nil

	case sbWindowConfirm:
		out := &canon.WindowConfirm{WID: p.ReadByte(), ID: p.ReadI16()}
		out.Accepted = p.ReadBool()
		return out, true, nil

	case sbTeleportConfirm, sbClientSettings:
		// Consumed by the proxy; the backend does not track these.
		return nil, false, nil
	}
	return nil, false, nil
}

// readPosLong reads a packed block position in the version's long form.
func readPosLong(p *mcnet.Packet, ver version.ProtocolVersion) canon.Pos {
	v := p.ReadU64()
	x := int32(int64(v) >> 38)
	var y, z int32
	if ver >= version.V1_14 {
		y = int32(int64(v) << 52 >> 52)
		z = int32(int64(v) << 26 >> 38)
	} else {
		y = int32(v >> 26 & 0xfff)
		z = int32(int64(v) << 38 >> 38)
	}
	return canon.Pos{X: x, Y: y, Z: z}
}

// skipItemStack advances past an inline (non-trailing) slot field without
// NBT support: a stack with NBT in a changed-slots array is rare enough that
// the remainder parse failing closed is acceptable.
func skipItemStack(p *mcnet.Packet, ver version.ProtocolVersion) {
	if ver < version.V1_13 {
		id := p.ReadI16()
		if id < 0 {
			return
		}
		p.ReadByte()
		p.ReadI16()
		p.ReadByte()
		return
	}
	if !p.ReadBool() {
		return
	}
	p.ReadVarInt()
	p.ReadByte()
	p.ReadByte()
}

// Disconnect serializes a kick. Login state always uses packet 0; Play uses
// the version's Disconnect ID.
func Disconnect(reason canon.Text, ver version.ProtocolVersion, play bool) *mcnet.Packet {
	var p *mcnet.Packet
	if play {
		p = newPacket(idDisconnect, ver)
	} else {
		p = mcnet.NewPacket(0x00)
	}
	p.WriteString(reason.JSON())
	return p
}
