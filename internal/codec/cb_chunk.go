package codec

import (
	"bytes"
	"fmt"
	"sort"

	"gatewire/internal/canon"
	"gatewire/internal/chunk"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

// emptyHeightmaps is the smallest valid heightmaps NBT: an unnamed empty
// compound. 1.14+ clients recompute heightmaps themselves when the entries
// are absent.
var emptyHeightmaps = []byte{0x0a, 0x00, 0x00, 0x00}

// rebuildSections turns the wire sections of a canonical Chunk back into
// paletted sections, keyed by section Y.
func rebuildSections(c *canon.Chunk) (map[int]*chunk.Section, error) {
	out := make(map[int]*chunk.Section, len(c.Sections))
	for _, cs := range c.Sections {
		s, err := chunk.SectionFromData(uint(cs.BPE), cs.Palette, cs.Data)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", cs.Y, err)
		}
		out[int(cs.Y)] = s
	}
	return out, nil
}

func sortedYs(sections map[int]*chunk.Section) []int {
	ys := make([]int, 0, len(sections))
	for y := range sections {
		ys = append(ys, y)
	}
	sort.Ints(ys)
	return ys
}

func lightFor(layers []canon.LightLayer, y int) *canon.LightLayer {
	for i := range layers {
		if int(layers[i].Y) == y {
			return &layers[i]
		}
	}
	return nil
}

func toTCPChunk(c *canon.Chunk, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	sections, err := rebuildSections(c)
	if err != nil {
		return nil, err
	}
	m := func(g uint32) uint32 { return conv.BlockToOld(g, ver.Block()) }

	switch {
	case ver < version.V1_9:
		return one(chunk18(c, sections, m)), nil
	case ver < version.V1_14:
		return one(chunkWrapping(c, sections, m, ver)), nil
	case ver < version.V1_17:
		return one(chunkPaletted(c, sections, m, ver)), nil
	default:
		return one(chunkColumn(c, sections, m, ver)), nil
	}
}

// chunk18 writes the 1.8 chunk data packet: a flat 16-bit block array per
// section, then block light, then sky light, then biomes.
func chunk18(c *canon.Chunk, sections map[int]*chunk.Section, m chunk.IDMap) *mcnet.Packet {
	p := mcnet.NewPacket(cbPacketIDs[idChunkData][g8])
	p.WriteI32(c.X)
	p.WriteI32(c.Z)
	p.WriteBool(c.Full)
	var mask uint16
	for _, y := range sortedYs(sections) {
		if y >= 0 && y < 16 {
			mask |= 1 << uint(y)
		}
	}
	p.WriteU16(mask)

	var data bytes.Buffer
	for _, y := range sortedYs(sections) {
		sections[y].Blocks16(&data, m)
	}
	for _, y := range sortedYs(sections) {
		writeLight(&data, lightFor(c.BlockLight, y))
	}
	for _, y := range sortedYs(sections) {
		writeLight(&data, lightFor(c.SkyLight, y))
	}
	if c.Full {
		data.Write(make([]byte, 256)) // biomes
	}
	p.WriteVarInt(int32(data.Len()))
	p.WriteBytes(data.Bytes())
	return p
}

func writeLight(buf *bytes.Buffer, l *canon.LightLayer) {
	if l != nil && len(l.Data) == chunk.LightLen {
		buf.Write(l.Data)
		return
	}
	full := make([]byte, chunk.LightLen)
	for i := range full {
		full[i] = 0xff
	}
	buf.Write(full)
}

// chunkWrapping writes the 1.9-1.13 chunk data packet: paletted sections in
// the wrapping bit layout, light inline.
func chunkWrapping(c *canon.Chunk, sections map[int]*chunk.Section, m chunk.IDMap, ver version.ProtocolVersion) *mcnet.Packet {
	p := newPacket(idChunkData, ver)
	p.WriteI32(c.X)
	p.WriteI32(c.Z)
	p.WriteBool(c.Full)
	var mask int32
	for _, y := range sortedYs(sections) {
		if y >= 0 && y < 32 {
			mask |= 1 << uint(y)
		}
	}
	p.WriteVarInt(mask)

	var data bytes.Buffer
	for _, y := range sortedYs(sections) {
		sections[y].WriteWrapping(&data, m)
		writeLight(&data, lightFor(c.BlockLight, y))
		writeLight(&data, lightFor(c.SkyLight, y))
	}
	if c.Full {
		if ver >= version.V1_13 {
			var biome [4]byte
			for i := 0; i < 256; i++ {
				data.Write(biome[:])
			}
		} else {
			data.Write(make([]byte, 256))
		}
	}
	p.WriteVarInt(int32(data.Len()))
	p.WriteBytes(data.Bytes())
	return p
}

// chunkPaletted writes the 1.14-1.16 chunk data packet: heightmaps NBT, a
// block count per section, and light shipped separately (dropped here; the
// client recomputes).
func chunkPaletted(c *canon.Chunk, sections map[int]*chunk.Section, m chunk.IDMap, ver version.ProtocolVersion) *mcnet.Packet {
	p := newPacket(idChunkData, ver)
	p.WriteI32(c.X)
	p.WriteI32(c.Z)
	p.WriteBool(c.Full)
	if ver >= version.V1_16 && ver < version.V1_16_2 {
		p.WriteBool(true) // ignore old data
	}
	var mask int32
	for _, y := range sortedYs(sections) {
		if y >= 0 && y < 32 {
			mask |= 1 << uint(y)
		}
	}
	p.WriteVarInt(mask)
	p.WriteBytes(emptyHeightmaps)
	if c.Full && ver >= version.V1_15 {
		if ver >= version.V1_16_2 {
			p.WriteVarInt(1024)
			for i := 0; i < 1024; i++ {
				p.WriteVarInt(0)
			}
		} else {
			for i := 0; i < 1024; i++ {
				p.WriteI32(0)
			}
		}
	}

	var data bytes.Buffer
	for _, y := range sortedYs(sections) {
		s := sections[y]
		var count [2]byte
		n := s.NonAir()
		count[0] = byte(n >> 8)
		count[1] = byte(n)
		data.Write(count[:])
		if ver >= version.V1_16 {
			s.WriteModern(&data, m)
		} else {
			s.WriteWrapping(&data, m)
		}
	}
	p.WriteVarInt(int32(data.Len()))
	p.WriteBytes(data.Bytes())
	if c.Full && ver == version.V1_14 {
		// 1.14.0 still carried biomes after the data.
		for i := 0; i < 256; i++ {
			p.WriteI32(0)
		}
	}
	p.WriteVarInt(0) // block entities
	return p
}

// chunkColumn writes the 1.17+ full-column format: every section always
// present, biomes as a second paletted container, light inline on 1.18+
// (1.17 gets no light data from this packet).
func chunkColumn(c *canon.Chunk, sections map[int]*chunk.Section, m chunk.IDMap, ver version.ProtocolVersion) *mcnet.Packet {
	p := newPacket(idChunkData, ver)
	p.WriteI32(c.X)
	p.WriteI32(c.Z)
	p.WriteBytes(emptyHeightmaps)

	height := 16
	for _, y := range sortedYs(sections) {
		if y+1 > height {
			height = y + 1
		}
	}
	var data bytes.Buffer
	for y := 0; y < height; y++ {
		s, ok := sections[y]
		var count [2]byte
		if ok {
			n := s.NonAir()
			count[0] = byte(n >> 8)
			count[1] = byte(n)
		}
		data.Write(count[:])
		if ok {
			s.WriteModern(&data, m)
		} else {
			// Single-valued container: air.
			data.WriteByte(0)
			data.WriteByte(0) // palette entry varint 0
			data.WriteByte(0) // zero longs
		}
		// Biome container: single-valued, biome 0.
		data.WriteByte(0)
		data.WriteByte(0)
		data.WriteByte(0)
	}
	p.WriteVarInt(int32(data.Len()))
	p.WriteBytes(data.Bytes())
	p.WriteVarInt(0)  // block entities
	if ver < version.V1_18 {
		return p
	}
	// Inline light: trust edges, empty bitsets and arrays; the client
	// relights.
	p.WriteBool(true)
	for i := 0; i < 4; i++ {
		p.WriteVarInt(0)
	}
	p.WriteVarInt(0)
	p.WriteVarInt(0)
	return p
}

func toTCPMultiBlockChange(c *canon.MultiBlockChange, ver version.ProtocolVersion, conv *convert.Converter) ([]*mcnet.Packet, error) {
	p := newPacket(idMultiBlockChange, ver)
	if ver >= version.V1_16_2 {
		pos := uint64(c.SectionX&0x3fffff)<<42 | uint64(c.SectionZ&0x3fffff)<<20 | uint64(c.SectionY&0xfffff)
		p.WriteU64(pos)
		if ver < version.V1_19 {
			p.WriteBool(true) // trust edges
		}
		p.WriteVarInt(int32(len(c.Changes)))
		for _, ch := range c.Changes {
			state := conv.BlockToOld(ch.State, ver.Block())
			p.WriteVarLong(int64(uint64(state)<<12 | uint64(ch.X)<<8 | uint64(ch.Z)<<4 | uint64(ch.Y)))
		}
		return one(p), nil
	}
	p.WriteI32(c.SectionX)
	p.WriteI32(c.SectionZ)
	p.WriteVarInt(int32(len(c.Changes)))
	for _, ch := range c.Changes {
		p.WriteByte(ch.X<<4 | ch.Z)
		p.WriteByte(byte(int(c.SectionY)*16 + int(ch.Y)))
		p.WriteVarInt(int32(conv.BlockToOld(ch.State, ver.Block())))
	}
	return one(p), nil
}
