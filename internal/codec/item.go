package codec

import (
	"gatewire/internal/canon"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

// writeItemStack serializes an item stack in the version's slot format,
// converting the ID (and damage, on 1.8-1.12) on the way out.
func writeItemStack(p *mcnet.Packet, it canon.Item, ver version.ProtocolVersion, conv *convert.Converter) {
	stack := it
	conv.ConvertStack(&stack, ver.Block())
	if ver < version.V1_13 {
		if stack.Empty() {
			p.WriteI16(-1)
			return
		}
		p.WriteI16(int16(stack.ID))
		p.WriteByte(stack.Count)
		p.WriteI16(stack.Damage)
		if len(stack.NBT) == 0 {
			p.WriteByte(0) // TAG_End: no NBT
		} else {
			p.WriteBytes(stack.NBT)
		}
		return
	}
	if stack.Empty() {
		p.WriteBool(false)
		return
	}
	p.WriteBool(true)
	p.WriteVarInt(stack.ID)
	p.WriteByte(stack.Count)
	if len(stack.NBT) == 0 {
		p.WriteByte(0)
	} else {
		p.WriteBytes(stack.NBT)
	}
}

// readItemStack parses a trailing slot field (the stack must be the last
// field of the packet, which holds for every server-bound packet carrying
// one) and converts the ID back to the current space.
func readItemStack(p *mcnet.Packet, ver version.ProtocolVersion, conv *convert.Converter) canon.Item {
	var it canon.Item
	if ver < version.V1_13 {
		id := p.ReadI16()
		if id < 0 || p.Err() != nil {
			return canon.Item{}
		}
		it.Count = p.ReadByte()
		damage := p.ReadI16()
		it.ID = conv.ItemToNew(int32(id), damage, ver.Block())
		it.NBT = trailingNBT(p)
		return it
	}
	if !p.ReadBool() || p.Err() != nil {
		return canon.Item{}
	}
	id := p.ReadVarInt()
	it.Count = p.ReadByte()
	it.ID = conv.ItemToNew(id, 0, ver.Block())
	it.NBT = trailingNBT(p)
	return it
}

func trailingNBT(p *mcnet.Packet) []byte {
	rest := p.Remaining()
	if len(rest) <= 1 && (len(rest) == 0 || rest[0] == 0) {
		return nil
	}
	return append([]byte(nil), rest...)
}
