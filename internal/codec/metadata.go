package codec

import (
	"gatewire/internal/canon"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

// metadataBytes serializes a canonical metadata map in the version's entity
// metadata format. Item values pass through the item converter. Returns nil
// when nothing representable remains.
func metadataBytes(m canon.Metadata, ver version.ProtocolVersion, conv *convert.Converter) []byte {
	if m.Empty() {
		return nil
	}
	buf := mcnet.NewBuffer(nil)
	wrote := false
	for index := 0; index < 256; index++ {
		f, ok := m.Fields[uint8(index)]
		if !ok {
			continue
		}
		if ver < version.V1_9 {
			if writeMeta18(buf, uint8(index), f, ver, conv) {
				wrote = true
			}
		} else {
			if writeMetaModern(buf, uint8(index), f, ver, conv) {
				wrote = true
			}
		}
	}
	if !wrote {
		return nil
	}
	if ver < version.V1_9 {
		buf.WriteByte(0x7f)
	} else {
		buf.WriteByte(0xff)
	}
	return buf.Bytes()
}

// writeMeta18 writes one 1.8 metadata entry: a packed type/index byte, then
// the payload. 1.8 indexes stop at 31.
func writeMeta18(buf *mcnet.Buffer, index uint8, f canon.MetaField, ver version.ProtocolVersion, conv *convert.Converter) bool {
	if index >= 32 {
		return false
	}
	head := func(ty uint8) { buf.WriteByte(ty<<5 | index&0x1f) }
	switch f.Kind {
	case canon.MetaByte:
		head(0)
		buf.WriteByte(byte(f.Byte))
	case canon.MetaBool:
		head(0)
		buf.WriteBool(f.Bool)
	case canon.MetaVarInt:
		head(2)
		buf.WriteI32(f.VarInt)
	case canon.MetaFloat:
		head(3)
		buf.WriteF32(f.Float)
	case canon.MetaString, canon.MetaChat:
		head(4)
		buf.WriteString(f.Str)
	case canon.MetaItem:
		head(5)
		stack := f.Item
		conv.ConvertStack(&stack, ver.Block())
		if stack.Empty() {
			buf.WriteI16(-1)
		} else {
			buf.WriteI16(int16(stack.ID))
			buf.WriteByte(stack.Count)
			buf.WriteI16(stack.Damage)
			buf.WriteByte(0)
		}
	case canon.MetaPos:
		head(6)
		buf.WriteI32(f.Pos.X)
		buf.WriteI32(f.Pos.Y)
		buf.WriteI32(f.Pos.Z)
	default:
		return false
	}
	return true
}

// writeMetaModern writes one 1.9+ metadata entry: index byte, type varint,
// payload.
func writeMetaModern(buf *mcnet.Buffer, index uint8, f canon.MetaField, ver version.ProtocolVersion, conv *convert.Converter) bool {
	if f.Kind > canon.MetaPos {
		return false
	}
	buf.WriteByte(index)
	switch f.Kind {
	case canon.MetaByte:
		buf.WriteVarInt(0)
		buf.WriteByte(byte(f.Byte))
	case canon.MetaVarInt:
		buf.WriteVarInt(1)
		buf.WriteVarInt(f.VarInt)
	case canon.MetaFloat:
		buf.WriteVarInt(2)
		buf.WriteF32(f.Float)
	case canon.MetaString:
		buf.WriteVarInt(3)
		buf.WriteString(f.Str)
	case canon.MetaChat:
		buf.WriteVarInt(4)
		buf.WriteString(f.Str)
	case canon.MetaItem:
		// The slot type index shifted when optional chat squeezed in (1.13).
		if ver >= version.V1_13 {
			buf.WriteVarInt(6)
		} else {
			buf.WriteVarInt(5)
		}
		stack := f.Item
		conv.ConvertStack(&stack, ver.Block())
		if ver < version.V1_13 {
			if stack.Empty() {
				buf.WriteI16(-1)
			} else {
				buf.WriteI16(int16(stack.ID))
				buf.WriteByte(stack.Count)
				buf.WriteI16(stack.Damage)
				buf.WriteByte(0)
			}
		} else {
			if stack.Empty() {
				buf.WriteBool(false)
			} else {
				buf.WriteBool(true)
				buf.WriteVarInt(stack.ID)
				buf.WriteByte(stack.Count)
				buf.WriteByte(0)
			}
		}
	case canon.MetaBool:
		if ver >= version.V1_13 {
			buf.WriteVarInt(7)
		} else {
			buf.WriteVarInt(6)
		}
		buf.WriteBool(f.Bool)
	case canon.MetaPos:
		if ver >= version.V1_13 {
			buf.WriteVarInt(9)
		} else {
			buf.WriteVarInt(8)
		}
		buf.WriteU64(f.Pos.ToLong())
	default:
		return false
	}
	return true
}
