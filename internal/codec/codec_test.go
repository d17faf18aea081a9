package codec

import (
	"bytes"
	"errors"
	"testing"

	"gatewire/internal/canon"
	"gatewire/internal/convert"
	"gatewire/internal/mcnet"
	"gatewire/internal/version"
)

var conv = convert.New()

func single(t *testing.T, p canon.CB, ver version.ProtocolVersion) *mcnet.Packet {
	t.Helper()
	out, err := ToTCP(p, ver, conv)
	if err != nil {
		t.Fatalf("ToTCP(%T, %v): %v", p, ver, err)
	}
	if len(out) != 1 {
		t.Fatalf("ToTCP(%T, %v) produced %d packets, want 1", p, ver, len(out))
	}
	return out[0]
}

func TestBlockUpdate18(t *testing.T) {
	p := single(t, &canon.BlockUpdate{Pos: canon.Pos{X: 10, Y: 64, Z: -3}, State: 13}, version.V1_8)
	if p.ID != 0x23 {
		t.Fatalf("packet id = %#x, want 0x23", p.ID)
	}
	b := mcnet.NewBuffer(p.Bytes())
	pos := b.ReadU64()
	want := canon.Pos{X: 10, Y: 64, Z: -3}.ToOldLong()
	if pos != want {
		t.Fatalf("position long = %#x, want %#x", pos, want)
	}
	if state := b.ReadVarInt(); state != 13 {
		t.Fatalf("state = %d, want 13", state)
	}
	if len(b.Remaining()) != 0 {
		t.Fatal("trailing bytes in block update")
	}
}

func TestBlockUpdate19(t *testing.T) {
	p := single(t, &canon.BlockUpdate{Pos: canon.Pos{X: 10, Y: 64, Z: -3}, State: 13}, version.V1_19)
	b := mcnet.NewBuffer(p.Bytes())
	if pos := b.ReadU64(); pos != (canon.Pos{X: 10, Y: 64, Z: -3}).ToLong() {
		t.Fatalf("position long = %#x", pos)
	}
	if state := b.ReadVarInt(); state != 13 {
		t.Fatalf("state = %d, want 13", state)
	}
}

func TestKeepAliveWidth(t *testing.T) {
	p := single(t, &canon.KeepAlive{ID: 5}, version.V1_8)
	if p.ID != 0x00 || len(p.Bytes()) != 1 {
		t.Fatalf("1.8 keepalive id %#x body %v", p.ID, p.Bytes())
	}
	p = single(t, &canon.KeepAlive{ID: 5}, version.V1_12_2)
	if len(p.Bytes()) != 8 {
		t.Fatalf("1.12.2 keepalive body %v, want 8-byte long", p.Bytes())
	}
}

func TestEntityMoveDivisor(t *testing.T) {
	// The 1.8 fixed-point delta divides by 128 (4096 -> 32 scale).
	p := single(t, &canon.EntityMove{EID: 7, X: 4096, Y: -4096, Z: 256, OnGround: true}, version.V1_8)
	b := mcnet.NewBuffer(p.Bytes())
	if eid := b.ReadVarInt(); eid != 7 {
		t.Fatalf("eid = %d", eid)
	}
	if x := int8(b.ReadByte()); x != 32 {
		t.Fatalf("dx = %d, want 32", x)
	}
	if y := int8(b.ReadByte()); y != -32 {
		t.Fatalf("dy = %d, want -32", y)
	}
	if z := int8(b.ReadByte()); z != 2 {
		t.Fatalf("dz = %d, want 2", z)
	}
	if !b.ReadBool() {
		t.Fatal("on ground lost")
	}

	p = single(t, &canon.EntityMove{EID: 7, X: 4096, Y: -4096, Z: 256}, version.V1_12)
	b = mcnet.NewBuffer(p.Bytes())
	b.ReadVarInt()
	if x := b.ReadI16(); x != 4096 {
		t.Fatalf("1.12 dx = %d, want raw 4096", x)
	}
}

func TestSpawnEntityFanOut(t *testing.T) {
	meta := canon.Metadata{Fields: map[uint8]canon.MetaField{0: {Kind: canon.MetaByte, Byte: 1}}}
	out, err := ToTCP(&canon.SpawnEntity{EID: 1, Ty: 41, Meta: meta}, version.V1_9, conv)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 {
		t.Fatalf("spawn with metadata produced %d packets, want spawn+metadata", len(out))
	}
	// Boat is object 1 in the 1.8-1.13 object taxonomy.
	b := mcnet.NewBuffer(out[0].Bytes())
	b.ReadVarInt()   // eid
	b.ReadBytes(16)  // uuid
	if obj := b.ReadByte(); obj != 1 {
		t.Fatalf("object id = %d, want 1 (boat)", obj)
	}
}

func TestSpawnEntityUnmappedObject(t *testing.T) {
	_, err := ToTCP(&canon.SpawnEntity{EID: 1, Ty: 9999}, version.V1_9, conv)
	var notObj ErrNotObject
	if !errors.As(err, &notObj) {
		t.Fatalf("err = %v, want ErrNotObject", err)
	}
	// 1.14+ spawns objects by entity type, so the same packet serializes.
	if _, err := ToTCP(&canon.SpawnEntity{EID: 1, Ty: 9999}, version.V1_14, conv); err != nil {
		t.Fatalf("1.14 spawn: %v", err)
	}
}

func TestDroppedKinds(t *testing.T) {
	if out, _ := ToTCP(&canon.Tags{}, version.V1_13, conv); out != nil {
		t.Error("tags must be dropped for 1.13")
	}
	if out, _ := ToTCP(&canon.CommandList{}, version.V1_12, conv); out != nil {
		t.Error("command tree must be dropped for 1.12")
	}
	if out, _ := ToTCP(&canon.UpdateViewPos{}, version.V1_12, conv); out != nil {
		t.Error("view pos must be dropped for 1.12")
	}
	if out, err := ToTCP(&canon.Tags{}, version.V1_14, conv); err != nil || len(out) != 1 {
		t.Errorf("tags for 1.14 = %v, %v", out, err)
	}
}

func TestChat116CarriesSender(t *testing.T) {
	p8 := single(t, &canon.Chat{Msg: `{"text":"x"}`, Ty: 0}, version.V1_8)
	p16 := single(t, &canon.Chat{Msg: `{"text":"x"}`, Ty: 0}, version.V1_16_5)
	if len(p16.Bytes()) != len(p8.Bytes())+16 {
		t.Fatalf("1.16 chat should add a 16-byte sender uuid: %d vs %d", len(p16.Bytes()), len(p8.Bytes()))
	}
	p19 := single(t, &canon.Chat{Msg: `{"text":"x"}`, Ty: 1}, version.V1_19)
	if p19.ID != cbPacketIDs[idSystemChat][g19] {
		t.Fatalf("1.19 chat id = %#x, want system chat", p19.ID)
	}
}

func TestChunk18Translation(t *testing.T) {
	// A section holding global IDs 1 and 17: under 1.8 rules every block is
	// a 16-bit legacy value, id<<4|meta.
	sec := canon.ChunkSection{Y: 0, BPE: 4, Palette: []uint32{0, 1, 17}, Data: make([]uint64, 256)}
	// Block 0 is local 1 (global 1), block 1 is local 2 (global 17).
	sec.Data[0] = 0x21
	c := &canon.Chunk{X: 0, Z: 0, Full: true, BitMap: 1, Sections: []canon.ChunkSection{sec}}
	p := single(t, c, version.V1_8)
	if p.ID != 0x21 {
		t.Fatalf("chunk data id = %#x, want 0x21", p.ID)
	}
	b := mcnet.NewBuffer(p.Bytes())
	if x := b.ReadI32(); x != 0 {
		t.Fatalf("x = %d", x)
	}
	b.ReadI32()
	if !b.ReadBool() {
		t.Fatal("full flag lost")
	}
	if mask := b.ReadU16(); mask != 1 {
		t.Fatalf("mask = %#x", mask)
	}
	size := b.ReadVarInt()
	data := b.ReadBytes(int(size))
	if b.Err() != nil {
		t.Fatal(b.Err())
	}
	// 4096 shorts + 2048 block light + 2048 sky light + 256 biomes.
	if len(data) != 4096*2+2048+2048+256 {
		t.Fatalf("data length = %d", len(data))
	}
	legacy1 := conv.BlockToOld(1, version.Block1_8)
	legacy17 := conv.BlockToOld(17, version.Block1_8)
	if got := uint32(data[0]) | uint32(data[1])<<8; got != legacy1 {
		t.Fatalf("block 0 = %d, want %d", got, legacy1)
	}
	if got := uint32(data[2]) | uint32(data[3])<<8; got != legacy17 {
		t.Fatalf("block 1 = %d, want %d", got, legacy17)
	}
	if data[4] != 0 || data[5] != 0 {
		t.Fatal("block 2 should be air")
	}
}

func TestChunkLengthPrefixInvariant(t *testing.T) {
	sec := canon.ChunkSection{Y: 0, BPE: 4, Palette: []uint32{0, 1}, Data: make([]uint64, 256)}
	c := &canon.Chunk{Full: true, BitMap: 1, Sections: []canon.ChunkSection{sec}}
	for _, ver := range []version.ProtocolVersion{version.V1_8, version.V1_9, version.V1_12_2, version.V1_14_4, version.V1_16_5, version.V1_18, version.V1_19} {
		out, err := ToTCP(c, ver, conv)
		if err != nil {
			t.Fatalf("%v: %v", ver, err)
		}
		if len(out) != 1 {
			t.Fatalf("%v: %d packets", ver, len(out))
		}
	}
}

func TestTitleActionShift(t *testing.T) {
	times := &canon.Title{Action: canon.TitleTimes, FadeIn: 1, Stay: 2, FadeOut: 3}
	p8 := single(t, times, version.V1_8)
	if a := mcnet.NewBuffer(p8.Bytes()).ReadVarInt(); a != 2 {
		t.Fatalf("1.8 times action = %d, want 2", a)
	}
	p12 := single(t, times, version.V1_12)
	if a := mcnet.NewBuffer(p12.Bytes()).ReadVarInt(); a != 3 {
		t.Fatalf("1.12 times action = %d, want 3 (action bar shifted it)", a)
	}
	// 1.17 splits the packet; times become their own ID with no action tag.
	p17 := single(t, times, version.V1_17)
	b := mcnet.NewBuffer(p17.Bytes())
	if in := b.ReadI32(); in != 1 {
		t.Fatalf("1.17 fade-in = %d", in)
	}
}

func TestWindowOpenShapes(t *testing.T) {
	open := &canon.WindowOpen{WID: 2, Ty: "minecraft:generic_9x3", Title: `{"text":"Chest"}`}
	p8 := single(t, open, version.V1_8)
	b := mcnet.NewBuffer(p8.Bytes())
	if wid := b.ReadByte(); wid != 2 {
		t.Fatalf("wid = %d", wid)
	}
	if kind := b.ReadString(64); kind != "minecraft:chest" {
		t.Fatalf("1.8 kind = %q", kind)
	}
	b.ReadString(64)
	if slots := b.ReadByte(); slots != 27 {
		t.Fatalf("slots = %d", slots)
	}

	p14 := single(t, open, version.V1_14)
	b = mcnet.NewBuffer(p14.Bytes())
	if wid := b.ReadVarInt(); wid != 2 {
		t.Fatalf("wid = %d", wid)
	}
	if ty := b.ReadVarInt(); ty != 2 {
		t.Fatalf("1.14 menu type = %d, want 2", ty)
	}
}

func TestSetSlotRevision(t *testing.T) {
	slot := &canon.WindowItem{WID: 1, Slot: 3, Revision: 9, Item: canon.Item{ID: 1, Count: 2}}
	p16 := single(t, slot, version.V1_16_5)
	p17 := single(t, slot, version.V1_17_1)
	if len(p17.Bytes()) != len(p16.Bytes())+1 {
		t.Fatalf("1.17 set-slot should add a revision varint: %d vs %d", len(p17.Bytes()), len(p16.Bytes()))
	}
}

func TestItemStackConversion(t *testing.T) {
	p := single(t, &canon.WindowItem{WID: 0, Slot: 0, Item: canon.Item{ID: 2, Count: 1}}, version.V1_8)
	b := mcnet.NewBuffer(p.Bytes())
	b.ReadByte() // wid
	b.ReadI16()  // slot
	if id := b.ReadI16(); id != 1 {
		t.Fatalf("legacy item id = %d, want 1 (stone)", id)
	}
	if count := b.ReadByte(); count != 1 {
		t.Fatalf("count = %d", count)
	}
	if damage := b.ReadI16(); damage != 1 {
		t.Fatalf("damage = %d, want 1 (granite)", damage)
	}
}

func TestFromTCPKeepAlive(t *testing.T) {
	p := mcnet.NewPacket(sbPacketIDs[sbKeepAlive][g8])
	p.WriteVarInt(77)
	sb, ok, err := FromTCP(p, version.V1_8, conv)
	if err != nil || !ok {
		t.Fatalf("FromTCP: %v, %v", ok, err)
	}
	if ka, good := sb.(*canon.SBKeepAlive); !good || ka.ID != 77 {
		t.Fatalf("parsed %+v", sb)
	}
}

func TestFromTCPPosLook(t *testing.T) {
	p := mcnet.NewPacket(sbPacketIDs[sbPlayerPosLook][g19])
	p.WriteF64(1.5)
	p.WriteF64(64)
	p.WriteF64(-2)
	p.WriteF32(90)
	p.WriteF32(-10)
	p.WriteBool(true)
	sb, ok, err := FromTCP(p, version.V1_19, conv)
	if err != nil || !ok {
		t.Fatalf("FromTCP: %v, %v", ok, err)
	}
	got := sb.(*canon.PlayerPosLook)
	if got.X != 1.5 || got.Y != 64 || got.Z != -2 || got.Yaw != 90 || got.Pitch != -10 || !got.OnGround {
		t.Fatalf("parsed %+v", got)
	}
}

func TestFromTCPDig(t *testing.T) {
	p := mcnet.NewPacket(sbPacketIDs[sbBlockDig][g8])
	p.WriteByte(2)
	p.WriteU64(canon.Pos{X: 5, Y: 70, Z: -9}.ToOldLong())
	p.WriteByte(1)
	sb, ok, err := FromTCP(p, version.V1_8, conv)
	if err != nil || !ok {
		t.Fatalf("FromTCP: %v, %v", ok, err)
	}
	dig := sb.(*canon.BlockDig)
	if dig.Status != 2 || dig.Pos != (canon.Pos{X: 5, Y: 70, Z: -9}) || dig.Face != 1 {
		t.Fatalf("parsed %+v", dig)
	}
}

func TestFromTCPUnknownDropped(t *testing.T) {
	p := mcnet.NewPacket(0x7c)
	sb, ok, err := FromTCP(p, version.V1_8, conv)
	if sb != nil || ok || err != nil {
		t.Fatalf("unknown packet: %v, %v, %v", sb, ok, err)
	}
}

func TestFromTCPTruncated(t *testing.T) {
	p := mcnet.NewPacket(sbPacketIDs[sbPlayerPos][g8])
	p.WriteF64(1) // three doubles short
	_, ok, err := FromTCP(p, version.V1_8, conv)
	if ok || err == nil {
		t.Fatalf("truncated packet: ok=%v err=%v", ok, err)
	}
}

func TestDisconnectShapes(t *testing.T) {
	login := Disconnect(canon.Text{Text: "Invalid auth token"}, version.V1_8, false)
	if login.ID != 0x00 {
		t.Fatalf("login disconnect id = %#x", login.ID)
	}
	if !bytes.Contains(login.Bytes(), []byte("Invalid auth token")) {
		t.Fatal("reason missing")
	}
	play := Disconnect(canon.Text{Text: "bye"}, version.V1_8, true)
	if play.ID != 0x40 {
		t.Fatalf("1.8 play disconnect id = %#x", play.ID)
	}
}

func TestMultiBlockChangeShapes(t *testing.T) {
	c := &canon.MultiBlockChange{
		SectionX: 1, SectionY: 4, SectionZ: -1,
		Changes: []canon.BlockChange{{X: 3, Y: 2, Z: 15, State: 1}},
	}
	p8 := single(t, c, version.V1_8)
	b := mcnet.NewBuffer(p8.Bytes())
	if x := b.ReadI32(); x != 1 {
		t.Fatalf("chunk x = %d", x)
	}
	b.ReadI32()
	if n := b.ReadVarInt(); n != 1 {
		t.Fatalf("count = %d", n)
	}
	if xz := b.ReadByte(); xz != 3<<4|15 {
		t.Fatalf("xz = %#x", xz)
	}
	if y := b.ReadByte(); y != 4*16+2 {
		t.Fatalf("y = %d", y)
	}
	if st := b.ReadVarInt(); st != int32(conv.BlockToOld(1, version.Block1_8)) {
		t.Fatalf("state = %d", st)
	}

	p19 := single(t, c, version.V1_19)
	b = mcnet.NewBuffer(p19.Bytes())
	pos := b.ReadU64()
	if int32(int64(pos)>>42) != 1 {
		t.Fatalf("section x from %#x", pos)
	}
	if n := b.ReadVarInt(); n != 1 {
		t.Fatalf("count = %d", n)
	}
}
