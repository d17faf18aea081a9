package canon

import (
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"gatewire/internal/transfer"
)

func roundTripCB(t *testing.T, p CB) CB {
	t.Helper()
	w := transfer.NewWriter(nil)
	WriteCB(w, p)
	got, err := ReadCB(transfer.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("ReadCB(%T): %v", p, err)
	}
	return got
}

func roundTripSB(t *testing.T, p SB) SB {
	t.Helper()
	w := transfer.NewWriter(nil)
	WriteSB(w, p)
	got, err := ReadSB(transfer.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("ReadSB(%T): %v", p, err)
	}
	return got
}

func TestCBRoundTrip(t *testing.T) {
	packets := []CB{
		&Abilities{Invulnerable: true, AllowFlying: true, FlySpeed: 1, WalkSpeed: 2},
		&BlockUpdate{Pos: Pos{10, 64, -3}, State: 13},
		&Chat{Msg: `{"text":"hi"}`, Ty: 1},
		&ChunkUnload{X: -3, Z: 9},
		&EntityMove{EID: 5, X: 128, Y: -4096, Z: 0, OnGround: true},
		&EntityPos{EID: 5, X: 1.5, Y: 64, Z: -9.25, Yaw: 12, Pitch: -3, OnGround: true},
		&JoinGame{EID: 100, GameMode: 1, LevelType: "default", ViewDistance: 10, WorldHeight: 256},
		&KeepAlive{ID: -77},
		&PluginMessage{Channel: "minecraft:brand", Data: []byte("gatewire")},
		&RemoveEntities{EIDs: []int32{1, -2, 3}},
		&SetPosLook{X: 0.5, Y: 80, Z: 0.5, Yaw: 90, TeleportID: 7},
		&SwitchServer{Addrs: []string{"10.0.0.2:8483"}},
		&Title{Action: TitleSubtitle, Text: `{"text":"sub"}`},
		&UpdateViewPos{X: 4, Z: -4},
		&WindowOpen{WID: 3, Ty: "minecraft:generic_9x3", Size: 27, Title: `{"text":"Chest"}`},
	}
	for _, p := range packets {
		got := roundTripCB(t, p)
		if !reflect.DeepEqual(got, p) {
			t.Errorf("%T round trip:\n got %+v\nwant %+v", p, got, p)
		}
	}
}

func TestCBRoundTripSpawnEntity(t *testing.T) {
	p := &SpawnEntity{
		EID: 9, ID: uuid.MustParse("11111111-2222-3333-4444-555555555555"),
		Ty: 41, X: 1, Y: 2, Z: 3, Yaw: 4, Pitch: 5, HeadYaw: 6,
		VelX: 7, VelY: 8, VelZ: 9, Data: 1, Living: true,
		Meta: Metadata{Fields: map[uint8]MetaField{
			0:  {Kind: MetaByte, Byte: 2},
			6:  {Kind: MetaFloat, Float: 19.5},
			17: {Kind: MetaItem, Item: Item{ID: 5, Count: 3}},
		}},
	}
	got := roundTripCB(t, p).(*SpawnEntity)
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, p)
	}
}

func TestCBRoundTripChunk(t *testing.T) {
	p := &Chunk{
		X: 1, Z: -2, Full: true, BitMap: 0b101,
		Sections: []ChunkSection{
			{Y: 0, BPE: 4, NonAir: 10, Palette: []uint32{0, 1, 17}, Data: make([]uint64, 256)},
			{Y: 2, BPE: 5, NonAir: 4096, Palette: []uint32{0, 33}, Data: make([]uint64, 342)},
		},
		SkyLight: []LightLayer{{Y: 0, Data: make([]byte, 2048)}},
	}
	p.Sections[0].Data[0] = 0x1221
	got := roundTripCB(t, p).(*Chunk)
	if got.X != p.X || got.Z != p.Z || !got.Full || got.BitMap != p.BitMap {
		t.Fatalf("header fields: %+v", got)
	}
	if len(got.Sections) != 2 || got.Sections[0].Data[0] != 0x1221 {
		t.Fatalf("sections: %+v", got.Sections)
	}
	if len(got.SkyLight) != 1 || len(got.SkyLight[0].Data) != 2048 {
		t.Fatalf("sky light: %+v", got.SkyLight)
	}
	if got.BlockLight != nil {
		t.Fatalf("block light should be empty, got %v", got.BlockLight)
	}
}

func TestCBRoundTripCommandList(t *testing.T) {
	p := &CommandList{
		Nodes: []CommandNode{
			{Ty: CommandRoot, Children: []uint32{1}},
			{Ty: CommandLiteral, Name: "tp", Executable: true, Children: []uint32{2}},
			{Ty: CommandArgument, Name: "target", Parser: "minecraft:entity", Properties: []byte{2}},
		},
		Root: 0,
	}
	got := roundTripCB(t, p).(*CommandList)
	if !reflect.DeepEqual(got, p) {
		t.Errorf("round trip:\n got %+v\nwant %+v", got, p)
	}
}

func TestSBRoundTrip(t *testing.T) {
	packets := []SB{
		&SBChat{Msg: "hello"},
		&ClickWindow{WID: 1, Slot: 36, Button: 1, Mode: 4, Item: Item{ID: 3, Count: 64}},
		&BlockDig{Pos: Pos{1, 2, 3}, Status: 2, Face: 1},
		&BlockPlace{Pos: Pos{-1, 70, 12}, Face: 1, CursorX: 0.5},
		&Flying{Flying: true},
		&SBKeepAlive{ID: 1234567},
		&PlayerPosLook{X: 8.5, Y: 65, Z: -3, Yaw: 180, Pitch: -90, OnGround: true},
		&UseEntity{EID: 44, Action: 1, Sneaking: true},
		&WindowConfirm{WID: 1, ID: -3, Accepted: false},
	}
	for _, p := range packets {
		got := roundTripSB(t, p)
		if !reflect.DeepEqual(got, p) {
			t.Errorf("%T round trip:\n got %+v\nwant %+v", p, got, p)
		}
	}
}

func TestUnknownKindRecoverable(t *testing.T) {
	w := transfer.NewWriter(nil)
	w.WriteEnum(9999, 1, func(w *transfer.Writer) { w.WriteU64(0) })
	WriteCB(w, &KeepAlive{ID: 1})
	r := transfer.NewReader(w.Bytes())
	_, err := ReadCB(r)
	var iv transfer.InvalidVariantError
	if !errors.As(err, &iv) {
		t.Fatalf("err = %v, want InvalidVariantError", err)
	}
	// The stream must still be positioned at the next packet.
	p, err := ReadCB(r)
	if err != nil {
		t.Fatal(err)
	}
	if ka, ok := p.(*KeepAlive); !ok || ka.ID != 1 {
		t.Fatalf("next packet = %+v", p)
	}
}

func TestJoinRoundTrip(t *testing.T) {
	j := Join{
		Mode:     JoinSwitch,
		Username: "Notch",
		UUID:     uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeffff"),
		Ver:      754,
	}
	w := transfer.NewWriter(nil)
	WriteJoin(w, j)
	got, err := ReadJoin(transfer.NewReader(w.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if got != j {
		t.Errorf("got %+v, want %+v", got, j)
	}
}

func TestPosLongForms(t *testing.T) {
	p := Pos{X: 10, Y: 64, Z: -3}
	// Modern form: x << 38 | z << 12 | y.
	if got := p.ToLong(); got != uint64(10)<<38|uint64(int64(-3)&0x3ffffff)<<12|64 {
		t.Errorf("ToLong = %#x", got)
	}
	// 1.8 form: x << 38 | y << 26 | z.
	if got := p.ToOldLong(); got != uint64(10)<<38|uint64(64)<<26|uint64(int64(-3)&0x3ffffff) {
		t.Errorf("ToOldLong = %#x", got)
	}
}

func TestTextJSON(t *testing.T) {
	if got := (Text{Text: "Invalid auth token"}).JSON(); got != `{"text":"Invalid auth token"}` {
		t.Errorf("JSON = %s", got)
	}
	if got := (Text{Text: "x", Color: "red"}).JSON(); got != `{"text":"x","color":"red"}` {
		t.Errorf("JSON = %s", got)
	}
}
