package canon

import "gatewire/internal/transfer"

// SB is a canonical server-bound packet: something a client did, in
// version-independent form, on its way to the backend.
type SB interface {
	sbKind() uint64
	fields() uint64
	write(w *transfer.Writer)
	read(s *transfer.EnumReader) error
}

// Server-bound kind discriminants. Only append.
const (
	sbChat uint64 = iota
	sbClickWindow
	sbCloseWindow
	sbCreativeSlot
	sbBlockDig
	sbBlockPlace
	sbChangeHeldItem
	sbFlying
	sbKeepAlive
	sbPlayerPos
	sbPlayerPosLook
	sbPlayerLook
	sbPlayerCommand
	sbPluginMessage
	sbSwingArm
	sbUseEntity
	sbUseItem
	sbWindowConfirm
)

// WriteSB encodes one server-bound packet as a canonical enum field.
func WriteSB(w *transfer.Writer, p SB) {
	w.WriteEnum(p.sbKind(), p.fields(), p.write)
}

// ReadSB decodes one server-bound packet. Unknown discriminants surface as
// transfer.InvalidVariantError with the stream advanced past the packet.
func ReadSB(r *transfer.Reader) (SB, error) {
	var p SB
	err := r.ReadEnum(func(e *transfer.EnumReader) error {
		n := newSB(e.Variant())
		if n == nil {
			return transfer.InvalidVariantError(e.Variant())
		}
		if err := n.read(e); err != nil {
			return err
		}
		p = n
		return nil
	})
	return p, err
}

func newSB(kind uint64) SB {
	switch kind {
	case sbChat:
		return &SBChat{}
	case sbClickWindow:
		return &ClickWindow{}
	case sbCloseWindow:
		return &CloseWindow{}
	case sbCreativeSlot:
		return &CreativeSlot{}
	case sbBlockDig:
		return &BlockDig{}
	case sbBlockPlace:
		return &BlockPlace{}
	case sbChangeHeldItem:
		return &ChangeHeldItem{}
	case sbFlying:
		return &Flying{}
	case sbKeepAlive:
		return &SBKeepAlive{}
	case sbPlayerPos:
		return &PlayerPos{}
	case sbPlayerPosLook:
		return &PlayerPosLook{}
	case sbPlayerLook:
		return &PlayerLook{}
	case sbPlayerCommand:
		return &PlayerCommand{}
	case sbPluginMessage:
		return &SBPluginMessage{}
	case sbSwingArm:
		return &SwingArm{}
	case sbUseEntity:
		return &UseEntity{}
	case sbUseItem:
		return &UseItem{}
	case sbWindowConfirm:
		return &WindowConfirm{}
	}
	return nil
}

// SBChat is a chat message or command typed by the client.
type SBChat struct {
	Msg string
}

func (*SBChat) sbKind() uint64 { return sbChat }
func (*SBChat) fields() uint64 { return 1 }
func (p *SBChat) write(w *transfer.Writer) {
	w.WriteStr(p.Msg)
}
func (p *SBChat) read(s *transfer.EnumReader) error {
	return fieldStr(&s.StructReader, 0, &p.Msg)
}

// ClickWindow is one inventory click.
type ClickWindow struct {
	WID    uint8
	Slot   int16
	Button uint8
	Mode   uint8
	Item   Item
}

func (*ClickWindow) sbKind() uint64 { return sbClickWindow }
func (*ClickWindow) fields() uint64 { return 5 }
func (p *ClickWindow) write(w *transfer.Writer) {
	w.WriteU8(p.WID)
	w.WriteI16(p.Slot)
	w.WriteU8(p.Button)
	w.WriteU8(p.Mode)
	writeItem(w, p.Item)
}
func (p *ClickWindow) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.WID); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 1, &p.Slot); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 2, &p.Button); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 3, &p.Mode); err != nil {
		return err
	}
	return fieldItem(&s.StructReader, 4, &p.Item)
}

// CloseWindow closes an open window.
type CloseWindow struct {
	WID uint8
}

func (*CloseWindow) sbKind() uint64 { return sbCloseWindow }
func (*CloseWindow) fields() uint64 { return 1 }
func (p *CloseWindow) write(w *transfer.Writer) {
	w.WriteU8(p.WID)
}
func (p *CloseWindow) read(s *transfer.EnumReader) error {
	return fieldU8(&s.StructReader, 0, &p.WID)
}

// CreativeSlot sets a slot directly in creative mode.
type CreativeSlot struct {
	Slot int16
	Item Item
}

func (*CreativeSlot) sbKind() uint64 { return sbCreativeSlot }
func (*CreativeSlot) fields() uint64 { return 2 }
func (p *CreativeSlot) write(w *transfer.Writer) {
	w.WriteI16(p.Slot)
	writeItem(w, p.Item)
}
func (p *CreativeSlot) read(s *transfer.EnumReader) error {
	if err := fieldI16(&s.StructReader, 0, &p.Slot); err != nil {
		return err
	}
	return fieldItem(&s.StructReader, 1, &p.Item)
}

// BlockDig starts, cancels or finishes breaking a block.
type BlockDig struct {
	Pos    Pos
	Status uint8
	Face   uint8
}

func (*BlockDig) sbKind() uint64 { return sbBlockDig }
func (*BlockDig) fields() uint64 { return 3 }
func (p *BlockDig) write(w *transfer.Writer) {
	writePos(w, p.Pos)
	w.WriteU8(p.Status)
	w.WriteU8(p.Face)
}
func (p *BlockDig) read(s *transfer.EnumReader) error {
	if err := fieldPos(&s.StructReader, 0, &p.Pos); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 1, &p.Status); err != nil {
		return err
	}
	return fieldU8(&s.StructReader, 2, &p.Face)
}

// BlockPlace places a block (or uses an item against one).
type BlockPlace struct {
	Pos     Pos
	Face    uint8
	Hand    uint8
	CursorX float32
	CursorY float32
	CursorZ float32
}

func (*BlockPlace) sbKind() uint64 { return sbBlockPlace }
func (*BlockPlace) fields() uint64 { return 6 }
func (p *BlockPlace) write(w *transfer.Writer) {
	writePos(w, p.Pos)
	w.WriteU8(p.Face)
	w.WriteU8(p.Hand)
	w.WriteF32(p.CursorX)
	w.WriteF32(p.CursorY)
	w.WriteF32(p.CursorZ)
}
func (p *BlockPlace) read(s *transfer.EnumReader) error {
	if err := fieldPos(&s.StructReader, 0, &p.Pos); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 1, &p.Face); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 2, &p.Hand); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 3, &p.CursorX); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 4, &p.CursorY); err != nil {
		return err
	}
	return fieldF32(&s.StructReader, 5, &p.CursorZ)
}

// ChangeHeldItem selects a hotbar slot.
type ChangeHeldItem struct {
	Slot uint8
}

func (*ChangeHeldItem) sbKind() uint64 { return sbChangeHeldItem }
func (*ChangeHeldItem) fields() uint64 { return 1 }
func (p *ChangeHeldItem) write(w *transfer.Writer) {
	w.WriteU8(p.Slot)
}
func (p *ChangeHeldItem) read(s *transfer.EnumReader) error {
	return fieldU8(&s.StructReader, 0, &p.Slot)
}

// Flying is the bare per-tick movement packet: only the on-ground flag
// changed.
type Flying struct {
	Flying bool
}

func (*Flying) sbKind() uint64 { return sbFlying }
func (*Flying) fields() uint64 { return 1 }
func (p *Flying) write(w *transfer.Writer) {
	w.WriteBool(p.Flying)
}
func (p *Flying) read(s *transfer.EnumReader) error {
	return fieldBool(&s.StructReader, 0, &p.Flying)
}

// SBKeepAlive echoes a clientbound KeepAlive.
type SBKeepAlive struct {
	ID int64
}

func (*SBKeepAlive) sbKind() uint64 { return sbKeepAlive }
func (*SBKeepAlive) fields() uint64 { return 1 }
func (p *SBKeepAlive) write(w *transfer.Writer) {
	w.WriteI64(p.ID)
}
func (p *SBKeepAlive) read(s *transfer.EnumReader) error {
	return fieldI64(&s.StructReader, 0, &p.ID)
}

// PlayerPos is a position-only movement update.
type PlayerPos struct {
	X, Y, Z  float64
	OnGround bool
}

func (*PlayerPos) sbKind() uint64 { return sbPlayerPos }
func (*PlayerPos) fields() uint64 { return 4 }
func (p *PlayerPos) write(w *transfer.Writer) {
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteBool(p.OnGround)
}
func (p *PlayerPos) read(s *transfer.EnumReader) error {
	if err := fieldF64(&s.StructReader, 0, &p.X); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 1, &p.Y); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 2, &p.Z); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 3, &p.OnGround)
}

// PlayerPosLook is a combined movement and rotation update.
type PlayerPosLook struct {
	X, Y, Z  float64
	Yaw      float32
	Pitch    float32
	OnGround bool
}

func (*PlayerPosLook) sbKind() uint64 { return sbPlayerPosLook }
func (*PlayerPosLook) fields() uint64 { return 6 }
func (p *PlayerPosLook) write(w *transfer.Writer) {
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteF32(p.Yaw)
	w.WriteF32(p.Pitch)
	w.WriteBool(p.OnGround)
}
func (p *PlayerPosLook) read(s *transfer.EnumReader) error {
	if err := fieldF64(&s.StructReader, 0, &p.X); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 1, &p.Y); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 2, &p.Z); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 3, &p.Yaw); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 4, &p.Pitch); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 5, &p.OnGround)
}

// PlayerLook is a rotation-only update.
type PlayerLook struct {
	Yaw      float32
	Pitch    float32
	OnGround bool
}

func (*PlayerLook) sbKind() uint64 { return sbPlayerLook }
func (*PlayerLook) fields() uint64 { return 3 }
func (p *PlayerLook) write(w *transfer.Writer) {
	w.WriteF32(p.Yaw)
	w.WriteF32(p.Pitch)
	w.WriteBool(p.OnGround)
}
func (p *PlayerLook) read(s *transfer.EnumReader) error {
	if err := fieldF32(&s.StructReader, 0, &p.Yaw); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 1, &p.Pitch); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 2, &p.OnGround)
}

// PlayerCommand is a sneak/sprint/leave-bed style action.
type PlayerCommand struct {
	EID    int32
	Action uint8
}

func (*PlayerCommand) sbKind() uint64 { return sbPlayerCommand }
func (*PlayerCommand) fields() uint64 { return 2 }
func (p *PlayerCommand) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteU8(p.Action)
}
func (p *PlayerCommand) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	return fieldU8(&s.StructReader, 1, &p.Action)
}

// SBPluginMessage forwards a plugin channel payload from the client.
type SBPluginMessage struct {
	Channel string
	Data    []byte
}

func (*SBPluginMessage) sbKind() uint64 { return sbPluginMessage }
func (*SBPluginMessage) fields() uint64 { return 2 }
func (p *SBPluginMessage) write(w *transfer.Writer) {
	w.WriteStr(p.Channel)
	w.WriteBytes(p.Data)
}
func (p *SBPluginMessage) read(s *transfer.EnumReader) error {
	if err := fieldStr(&s.StructReader, 0, &p.Channel); err != nil {
		return err
	}
	return fieldBytes(&s.StructReader, 1, &p.Data)
}

// SwingArm plays the arm-swing animation.
type SwingArm struct {
	Hand uint8
}

func (*SwingArm) sbKind() uint64 { return sbSwingArm }
func (*SwingArm) fields() uint64 { return 1 }
func (p *SwingArm) write(w *transfer.Writer) {
	w.WriteU8(p.Hand)
}
func (p *SwingArm) read(s *transfer.EnumReader) error {
	return fieldU8(&s.StructReader, 0, &p.Hand)
}

// UseEntity interacts with (or attacks) an entity.
type UseEntity struct {
	EID      int32
	Action   uint8
	Sneaking bool
}

func (*UseEntity) sbKind() uint64 { return sbUseEntity }
func (*UseEntity) fields() uint64 { return 3 }
func (p *UseEntity) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteU8(p.Action)
	w.WriteBool(p.Sneaking)
}
func (p *UseEntity) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 1, &p.Action); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 2, &p.Sneaking)
}

// UseItem uses the held item.
type UseItem struct {
	Hand uint8
}

func (*UseItem) sbKind() uint64 { return sbUseItem }
func (*UseItem) fields() uint64 { return 1 }
func (p *UseItem) write(w *transfer.Writer) {
	w.WriteU8(p.Hand)
}
func (p *UseItem) read(s *transfer.EnumReader) error {
	return fieldU8(&s.StructReader, 0, &p.Hand)
}

// WindowConfirm acknowledges a rejected inventory transaction (1.8-1.16).
type WindowConfirm struct {
	WID      uint8
	ID       int16
	Accepted bool
}

func (*WindowConfirm) sbKind() uint64 { return sbWindowConfirm }
func (*WindowConfirm) fields() uint64 { return 3 }
func (p *WindowConfirm) write(w *transfer.Writer) {
	w.WriteU8(p.WID)
	w.WriteI16(p.ID)
	w.WriteBool(p.Accepted)
}
func (p *WindowConfirm) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.WID); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 1, &p.ID); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 2, &p.Accepted)
}
