package canon

import (
	"github.com/google/uuid"

	"gatewire/internal/transfer"
)

// CB is a canonical client-bound packet: something the backend asks the
// proxy to deliver to a client, in version-independent form.
type CB interface {
	cbKind() uint64
	fields() uint64
	write(w *transfer.Writer)
	read(s *transfer.EnumReader) error
}

// Client-bound kind discriminants. The order is the wire contract with the
// backend; only append.
const (
	cbAbilities uint64 = iota
	cbAnimation
	cbBlockUpdate
	cbChangeGameState
	cbChat
	cbChunk
	cbChunkUnload
	cbCollectItem
	cbCommandList
	cbEntityEquipment
	cbEntityHeadLook
	cbEntityLook
	cbEntityMetadata
	cbEntityMove
	cbEntityMoveLook
	cbEntityPos
	cbEntityStatus
	cbEntityVelocity
	cbJoinGame
	cbKeepAlive
	cbMultiBlockChange
	cbParticle
	cbPlaySound
	cbPlayerHeader
	cbPlayerList
	cbPluginMessage
	cbRemoveEntities
	cbScoreboardDisplay
	cbScoreboardObjective
	cbScoreboardUpdate
	cbSetPosLook
	cbSpawnEntity
	cbSpawnPlayer
	cbSwitchServer
	cbTags
	cbTeams
	cbTitle
	cbUpdateHealth
	cbUpdateViewPos
	cbWindowItem
	cbWindowItems
	cbWindowOpen
)

// WriteCB encodes one client-bound packet as a canonical enum field.
func WriteCB(w *transfer.Writer, p CB) {
	w.WriteEnum(p.cbKind(), p.fields(), p.write)
}

// ReadCB decodes one client-bound packet. An unknown discriminant returns
// transfer.InvalidVariantError with the stream advanced past the packet.
func ReadCB(r *transfer.Reader) (CB, error) {
	var p CB
	err := r.ReadEnum(func(e *transfer.EnumReader) error {
		n := newCB(e.Variant())
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

func newCB(kind uint64) CB {
	switch kind {
	case cbAbilities:
		return &Abilities{}
	case cbAnimation:
		return &Animation{}
	case cbBlockUpdate:
		return &BlockUpdate{}
	case cbChangeGameState:
		return &ChangeGameState{}
	case cbChat:
		return &Chat{}
	case cbChunk:
		return &Chunk{}
	case cbChunkUnload:
		return &ChunkUnload{}
	case cbCollectItem:
		return &CollectItem{}
	case cbCommandList:
		return &CommandList{}
	case cbEntityEquipment:
		return &EntityEquipment{}
	case cbEntityHeadLook:
		return &EntityHeadLook{}
	case cbEntityLook:
		return &EntityLook{}
	case cbEntityMetadata:
		return &EntityMetadata{}
	case cbEntityMove:
		return &EntityMove{}
	case cbEntityMoveLook:
		return &EntityMoveLook{}
	case cbEntityPos:
		return &EntityPos{}
	case cbEntityStatus:
		return &EntityStatus{}
	case cbEntityVelocity:
		return &EntityVelocity{}
	case cbJoinGame:
		return &JoinGame{}
	case cbKeepAlive:
		return &KeepAlive{}
	case cbMultiBlockChange:
		return &MultiBlockChange{}
	case cbParticle:
		return &Particle{}
	case cbPlaySound:
		return &PlaySound{}
	case cbPlayerHeader:
		return &PlayerHeader{}
	case cbPlayerList:
		return &PlayerList{}
	case cbPluginMessage:
		return &PluginMessage{}
	case cbRemoveEntities:
		return &RemoveEntities{}
	case cbScoreboardDisplay:
		return &ScoreboardDisplay{}
	case cbScoreboardObjective:
		return &ScoreboardObjective{}
	case cbScoreboardUpdate:
		return &ScoreboardUpdate{}
	case cbSetPosLook:
		return &SetPosLook{}
	case cbSpawnEntity:
		return &SpawnEntity{}
	case cbSpawnPlayer:
		return &SpawnPlayer{}
	case cbSwitchServer:
		return &SwitchServer{}
	case cbTags:
		return &Tags{}
	case cbTeams:
		return &Teams{}
	case cbTitle:
		return &Title{}
	case cbUpdateHealth:
		return &UpdateHealth{}
	case cbUpdateViewPos:
		return &UpdateViewPos{}
	case cbWindowItem:
		return &WindowItem{}
	case cbWindowItems:
		return &WindowItems{}
	case cbWindowOpen:
		return &WindowOpen{}
	}
	return nil
}

// Abilities updates the client's movement abilities.
type Abilities struct {
	Invulnerable bool
	Flying       bool
	AllowFlying  bool
	InstaBreak   bool
	FlySpeed     float32
	WalkSpeed    float32
}

func (*Abilities) cbKind() uint64 { return cbAbilities }
func (*Abilities) fields() uint64 { return 6 }
func (p *Abilities) write(w *transfer.Writer) {
	w.WriteBool(p.Invulnerable)
	w.WriteBool(p.Flying)
	w.WriteBool(p.AllowFlying)
	w.WriteBool(p.InstaBreak)
	w.WriteF32(p.FlySpeed)
	w.WriteF32(p.WalkSpeed)
}
func (p *Abilities) read(s *transfer.EnumReader) error {
	if err := fieldBool(&s.StructReader, 0, &p.Invulnerable); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 1, &p.Flying); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 2, &p.AllowFlying); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 3, &p.InstaBreak); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 4, &p.FlySpeed); err != nil {
		return err
	}
	return fieldF32(&s.StructReader, 5, &p.WalkSpeed)
}

// Animation plays an entity animation. Kind 0 is a swing, 1 is damage.
type Animation struct {
	EID  int32
	Kind uint8
}

func (*Animation) cbKind() uint64 { return cbAnimation }
func (*Animation) fields() uint64 { return 2 }
func (p *Animation) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteU8(p.Kind)
}
func (p *Animation) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	return fieldU8(&s.StructReader, 1, &p.Kind)
}

// BlockUpdate replaces a single block.
type BlockUpdate struct {
	Pos   Pos
	State uint32
}

func (*BlockUpdate) cbKind() uint64 { return cbBlockUpdate }
func (*BlockUpdate) fields() uint64 { return 2 }
func (p *BlockUpdate) write(w *transfer.Writer) {
	writePos(w, p.Pos)
	w.WriteU32(p.State)
}
func (p *BlockUpdate) read(s *transfer.EnumReader) error {
	if err := fieldPos(&s.StructReader, 0, &p.Pos); err != nil {
		return err
	}
	return fieldU32(&s.StructReader, 1, &p.State)
}

// ChangeGameState carries the game-state-change opcode (rain, gamemode, ...).
type ChangeGameState struct {
	Action uint8
	Value  float32
}

func (*ChangeGameState) cbKind() uint64 { return cbChangeGameState }
func (*ChangeGameState) fields() uint64 { return 2 }
func (p *ChangeGameState) write(w *transfer.Writer) {
	w.WriteU8(p.Action)
	w.WriteF32(p.Value)
}
func (p *ChangeGameState) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.Action); err != nil {
		return err
	}
	return fieldF32(&s.StructReader, 1, &p.Value)
}

// Chat is a chat message. Msg is the serialized JSON chat component; Ty is
// 0 for chat, 1 for system, 2 for game info.
type Chat struct {
	Msg string
	Ty  uint8
}

func (*Chat) cbKind() uint64 { return cbChat }
func (*Chat) fields() uint64 { return 2 }
func (p *Chat) write(w *transfer.Writer) {
	w.WriteStr(p.Msg)
	w.WriteU8(p.Ty)
}
func (p *Chat) read(s *transfer.EnumReader) error {
	if err := fieldStr(&s.StructReader, 0, &p.Msg); err != nil {
		return err
	}
	return fieldU8(&s.StructReader, 1, &p.Ty)
}

// ChunkSection is one serialized section of a Chunk packet: the canonical
// palette plus the packed local IDs in the no-overflow layout.
type ChunkSection struct {
	Y       int32
	BPE     uint8
	NonAir  int32
	Palette []uint32
	Data    []uint64
}

func writeChunkSection(w *transfer.Writer, s ChunkSection) {
	w.WriteStruct(5, func(w *transfer.Writer) {
		w.WriteI32(s.Y)
		w.WriteU8(s.BPE)
		w.WriteI32(s.NonAir)
		w.WriteList(uint64(len(s.Palette)), func(w *transfer.Writer) {
			for _, g := range s.Palette {
				w.WriteU32(g)
			}
		})
		w.WriteList(uint64(len(s.Data)), func(w *transfer.Writer) {
			for _, d := range s.Data {
				w.WriteU64(d)
			}
		})
	})
}

func readChunkSection(r *transfer.Reader) (ChunkSection, error) {
	var cs ChunkSection
	err := r.ReadStruct(func(s *transfer.StructReader) error {
		if err := fieldI32(s, 0, &cs.Y); err != nil {
			return err
		}
		if err := fieldU8(s, 1, &cs.BPE); err != nil {
			return err
		}
		if err := fieldI32(s, 2, &cs.NonAir); err != nil {
			return err
		}
		if err := s.Field(3, func(r *transfer.Reader) error {
			return r.ReadList(func(r *transfer.Reader) error {
				v, err := r.ReadU32()
				cs.Palette = append(cs.Palette, v)
				return err
			})
		}); err != nil {
			return err
		}
		return s.Field(4, func(r *transfer.Reader) error {
			return r.ReadList(func(r *transfer.Reader) error {
				v, err := r.ReadU64()
				cs.Data = append(cs.Data, v)
				return err
			})
		})
	})
	return cs, err
}

// LightLayer is one section's half-byte-per-block light array.
type LightLayer struct {
	Y    int32
	Data []byte
}

// Chunk transfers a full chunk column.
type Chunk struct {
	X, Z       int32
	Full       bool
	BitMap     uint32
	Sections   []ChunkSection
	SkyLight   []LightLayer
	BlockLight []LightLayer
}

func (*Chunk) cbKind() uint64 { return cbChunk }
func (*Chunk) fields() uint64 { return 7 }
func (p *Chunk) write(w *transfer.Writer) {
	w.WriteI32(p.X)
	w.WriteI32(p.Z)
	w.WriteBool(p.Full)
	w.WriteU32(p.BitMap)
	w.WriteList(uint64(len(p.Sections)), func(w *transfer.Writer) {
		for _, s := range p.Sections {
			writeChunkSection(w, s)
		}
	})
	writeLightLayers(w, p.SkyLight)
	writeLightLayers(w, p.BlockLight)
}
func (p *Chunk) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.X); err != nil {
		return err
	}
	if err := fieldI32(&s.StructReader, 1, &p.Z); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 2, &p.Full); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 3, &p.BitMap); err != nil {
		return err
	}
	if err := s.Field(4, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			cs, err := readChunkSection(r)
			p.Sections = append(p.Sections, cs)
			return err
		})
	}); err != nil {
		return err
	}
	if err := s.Field(5, func(r *transfer.Reader) error {
		var e error
		p.SkyLight, e = readLightLayers(r)
		return e
	}); err != nil {
		return err
	}
	return s.Field(6, func(r *transfer.Reader) error {
		var e error
		p.BlockLight, e = readLightLayers(r)
		return e
	})
}

func writeLightLayers(w *transfer.Writer, layers []LightLayer) {
	w.WriteList(uint64(len(layers)), func(w *transfer.Writer) {
		for _, l := range layers {
			w.WriteStruct(2, func(w *transfer.Writer) {
				w.WriteI32(l.Y)
				w.WriteBytes(l.Data)
			})
		}
	})
}

func readLightLayers(r *transfer.Reader) ([]LightLayer, error) {
	var layers []LightLayer
	err := r.ReadList(func(r *transfer.Reader) error {
		var l LightLayer
		err := r.ReadStruct(func(s *transfer.StructReader) error {
			if err := fieldI32(s, 0, &l.Y); err != nil {
				return err
			}
			return fieldBytes(s, 1, &l.Data)
		})
		layers = append(layers, l)
		return err
	})
	return layers, err
}

// ChunkUnload drops a chunk column from the client.
type ChunkUnload struct {
	X, Z int32
}

func (*ChunkUnload) cbKind() uint64 { return cbChunkUnload }
func (*ChunkUnload) fields() uint64 { return 2 }
func (p *ChunkUnload) write(w *transfer.Writer) {
	w.WriteI32(p.X)
	w.WriteI32(p.Z)
}
func (p *ChunkUnload) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.X); err != nil {
		return err
	}
	return fieldI32(&s.StructReader, 1, &p.Z)
}

// CollectItem animates an item pickup.
type CollectItem struct {
	ItemEID   int32
	PlayerEID int32
	Amount    uint8
}

func (*CollectItem) cbKind() uint64 { return cbCollectItem }
func (*CollectItem) fields() uint64 { return 3 }
func (p *CollectItem) write(w *transfer.Writer) {
	w.WriteI32(p.ItemEID)
	w.WriteI32(p.PlayerEID)
	w.WriteU8(p.Amount)
}
func (p *CollectItem) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.ItemEID); err != nil {
		return err
	}
	if err := fieldI32(&s.StructReader, 1, &p.PlayerEID); err != nil {
		return err
	}
	return fieldU8(&s.StructReader, 2, &p.Amount)
}

// CommandType tags a command tree node.
type CommandType uint8

const (
	CommandRoot CommandType = iota
	CommandLiteral
	CommandArgument
)

// CommandNode is one node of the declared command tree.
type CommandNode struct {
	Ty          CommandType
	Executable  bool
	Children    []uint32
	HasRedirect bool
	Redirect    uint32
	Name        string
	Parser      string
	Properties  []byte
	Suggestion  string
}

// CommandList declares the command tree (1.13+ clients only).
type CommandList struct {
	Nodes []CommandNode
	Root  uint32
}

func (*CommandList) cbKind() uint64 { return cbCommandList }
func (*CommandList) fields() uint64 { return 2 }
func (p *CommandList) write(w *transfer.Writer) {
	w.WriteList(uint64(len(p.Nodes)), func(w *transfer.Writer) {
		for _, n := range p.Nodes {
			w.WriteStruct(9, func(w *transfer.Writer) {
				w.WriteU8(uint8(n.Ty))
				w.WriteBool(n.Executable)
				w.WriteList(uint64(len(n.Children)), func(w *transfer.Writer) {
					for _, c := range n.Children {
						w.WriteU32(c)
					}
				})
				w.WriteBool(n.HasRedirect)
				w.WriteU32(n.Redirect)
				w.WriteStr(n.Name)
				w.WriteStr(n.Parser)
				w.WriteBytes(n.Properties)
				w.WriteStr(n.Suggestion)
			})
		}
	})
	w.WriteU32(p.Root)
}
func (p *CommandList) read(s *transfer.EnumReader) error {
	if err := s.Field(0, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			var n CommandNode
			err := r.ReadStruct(func(s *transfer.StructReader) error {
				var ty uint8
				if err := fieldU8(s, 0, &ty); err != nil {
					return err
				}
				n.Ty = CommandType(ty)
				if err := fieldBool(s, 1, &n.Executable); err != nil {
					return err
				}
				if err := s.Field(2, func(r *transfer.Reader) error {
					return r.ReadList(func(r *transfer.Reader) error {
						c, err := r.ReadU32()
						n.Children = append(n.Children, c)
						return err
					})
				}); err != nil {
					return err
				}
				if err := fieldBool(s, 3, &n.HasRedirect); err != nil {
					return err
				}
				if err := fieldU32(s, 4, &n.Redirect); err != nil {
					return err
				}
				if err := fieldStr(s, 5, &n.Name); err != nil {
					return err
				}
				if err := fieldStr(s, 6, &n.Parser); err != nil {
					return err
				}
				if err := fieldBytes(s, 7, &n.Properties); err != nil {
					return err
				}
				return fieldStr(s, 8, &n.Suggestion)
			})
			p.Nodes = append(p.Nodes, n)
			return err
		})
	}); err != nil {
		return err
	}
	return fieldU32(&s.StructReader, 1, &p.Root)
}

// EntityEquipment sets one equipment slot of an entity.
type EntityEquipment struct {
	EID  int32
	Slot uint8
	Item Item
}

func (*EntityEquipment) cbKind() uint64 { return cbEntityEquipment }
func (*EntityEquipment) fields() uint64 { return 3 }
func (p *EntityEquipment) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteU8(p.Slot)
	writeItem(w, p.Item)
}
func (p *EntityEquipment) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 1, &p.Slot); err != nil {
		return err
	}
	return fieldItem(&s.StructReader, 2, &p.Item)
}

// EntityHeadLook rotates an entity's head.
type EntityHeadLook struct {
	EID int32
	Yaw int8
}

func (*EntityHeadLook) cbKind() uint64 { return cbEntityHeadLook }
func (*EntityHeadLook) fields() uint64 { return 2 }
func (p *EntityHeadLook) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteI8(p.Yaw)
}
func (p *EntityHeadLook) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	return fieldI8(&s.StructReader, 1, &p.Yaw)
}

// EntityLook rotates an entity in place.
type EntityLook struct {
	EID      int32
	Yaw      int8
	Pitch    int8
	OnGround bool
}

func (*EntityLook) cbKind() uint64 { return cbEntityLook }
func (*EntityLook) fields() uint64 { return 4 }
func (p *EntityLook) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteI8(p.Yaw)
	w.WriteI8(p.Pitch)
	w.WriteBool(p.OnGround)
}
func (p *EntityLook) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 1, &p.Yaw); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 2, &p.Pitch); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 3, &p.OnGround)
}

// EntityMetadata rewrites an entity's metadata.
type EntityMetadata struct {
	EID  int32
	Ty   uint32
	Meta Metadata
}

func (*EntityMetadata) cbKind() uint64 { return cbEntityMetadata }
func (*EntityMetadata) fields() uint64 { return 3 }
func (p *EntityMetadata) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteU32(p.Ty)
	writeMetadata(w, p.Meta)
}
func (p *EntityMetadata) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 1, &p.Ty); err != nil {
		return err
	}
	return fieldMetadata(&s.StructReader, 2, &p.Meta)
}

// EntityMove is a relative move, fixed-point position * 4096.
type EntityMove struct {
	EID      int32
	X, Y, Z  int16
	OnGround bool
}

func (*EntityMove) cbKind() uint64 { return cbEntityMove }
func (*EntityMove) fields() uint64 { return 5 }
func (p *EntityMove) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteI16(p.X)
	w.WriteI16(p.Y)
	w.WriteI16(p.Z)
	w.WriteBool(p.OnGround)
}
func (p *EntityMove) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 1, &p.X); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 2, &p.Y); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 3, &p.Z); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 4, &p.OnGround)
}

// EntityMoveLook is a relative move plus rotation.
type EntityMoveLook struct {
	EID      int32
	X, Y, Z  int16
	Yaw      int8
	Pitch    int8
	OnGround bool
}

func (*EntityMoveLook) cbKind() uint64 { return cbEntityMoveLook }
func (*EntityMoveLook) fields() uint64 { return 7 }
func (p *EntityMoveLook) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteI16(p.X)
	w.WriteI16(p.Y)
	w.WriteI16(p.Z)
	w.WriteI8(p.Yaw)
	w.WriteI8(p.Pitch)
	w.WriteBool(p.OnGround)
}
func (p *EntityMoveLook) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 1, &p.X); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 2, &p.Y); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 3, &p.Z); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 4, &p.Yaw); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 5, &p.Pitch); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 6, &p.OnGround)
}

// EntityPos teleports an entity to an absolute position.
type EntityPos struct {
	EID      int32
	X, Y, Z  float64
	Yaw      int8
	Pitch    int8
	OnGround bool
}

func (*EntityPos) cbKind() uint64 { return cbEntityPos }
func (*EntityPos) fields() uint64 { return 7 }
func (p *EntityPos) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteI8(p.Yaw)
	w.WriteI8(p.Pitch)
	w.WriteBool(p.OnGround)
}
func (p *EntityPos) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 1, &p.X); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 2, &p.Y); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 3, &p.Z); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 4, &p.Yaw); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 5, &p.Pitch); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 6, &p.OnGround)
}

// EntityStatus triggers a one-shot entity status animation.
type EntityStatus struct {
	EID    int32
	Status uint8
}

func (*EntityStatus) cbKind() uint64 { return cbEntityStatus }
func (*EntityStatus) fields() uint64 { return 2 }
func (p *EntityStatus) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteU8(p.Status)
}
func (p *EntityStatus) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	return fieldU8(&s.StructReader, 1, &p.Status)
}

// EntityVelocity sets an entity's velocity, fixed-point blocks/tick * 8000.
type EntityVelocity struct {
	EID     int32
	X, Y, Z int16
}

func (*EntityVelocity) cbKind() uint64 { return cbEntityVelocity }
func (*EntityVelocity) fields() uint64 { return 4 }
func (p *EntityVelocity) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteI16(p.X)
	w.WriteI16(p.Y)
	w.WriteI16(p.Z)
}
func (p *EntityVelocity) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 1, &p.X); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 2, &p.Y); err != nil {
		return err
	}
	return fieldI16(&s.StructReader, 3, &p.Z)
}

// JoinGame is the first Play-state packet.
type JoinGame struct {
	EID                 int32
	HardcoreMode        bool
	GameMode            uint8
	Dimension           int8
	LevelType           string
	Difficulty          uint8
	ViewDistance        uint16
	ReducedDebugInfo    bool
	EnableRespawnScreen bool
	WorldHeight         uint32
	WorldMinY           int32
}

func (*JoinGame) cbKind() uint64 { return cbJoinGame }
func (*JoinGame) fields() uint64 { return 11 }
func (p *JoinGame) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	w.WriteBool(p.HardcoreMode)
	w.WriteU8(p.GameMode)
	w.WriteI8(p.Dimension)
	w.WriteStr(p.LevelType)
	w.WriteU8(p.Difficulty)
	w.WriteU16(p.ViewDistance)
	w.WriteBool(p.ReducedDebugInfo)
	w.WriteBool(p.EnableRespawnScreen)
	w.WriteU32(p.WorldHeight)
	w.WriteI32(p.WorldMinY)
}
func (p *JoinGame) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 1, &p.HardcoreMode); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 2, &p.GameMode); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 3, &p.Dimension); err != nil {
		return err
	}
	if err := fieldStr(&s.StructReader, 4, &p.LevelType); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 5, &p.Difficulty); err != nil {
		return err
	}
	if err := fieldU16(&s.StructReader, 6, &p.ViewDistance); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 7, &p.ReducedDebugInfo); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 8, &p.EnableRespawnScreen); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 9, &p.WorldHeight); err != nil {
		return err
	}
	return fieldI32(&s.StructReader, 10, &p.WorldMinY)
}

// KeepAlive checks the client is still there.
type KeepAlive struct {
	ID int64
}

func (*KeepAlive) cbKind() uint64 { return cbKeepAlive }
func (*KeepAlive) fields() uint64 { return 1 }
func (p *KeepAlive) write(w *transfer.Writer) {
	w.WriteI64(p.ID)
}
func (p *KeepAlive) read(s *transfer.EnumReader) error {
	return fieldI64(&s.StructReader, 0, &p.ID)
}

// BlockChange is one record of a MultiBlockChange: section-relative
// coordinates plus the new state.
type BlockChange struct {
	X, Y, Z uint8
	State   uint32
}

// MultiBlockChange rewrites several blocks of one section at once.
type MultiBlockChange struct {
	SectionX, SectionY, SectionZ int32
	Changes                      []BlockChange
}

func (*MultiBlockChange) cbKind() uint64 { return cbMultiBlockChange }
func (*MultiBlockChange) fields() uint64 { return 4 }
func (p *MultiBlockChange) write(w *transfer.Writer) {
	w.WriteI32(p.SectionX)
	w.WriteI32(p.SectionY)
	w.WriteI32(p.SectionZ)
	w.WriteList(uint64(len(p.Changes)), func(w *transfer.Writer) {
		for _, c := range p.Changes {
			// Same packing as the 1.16.2 wire form: state, then the relative
			// position in the low 12 bits.
			w.WriteU64(uint64(c.State)<<12 | uint64(c.X)<<8 | uint64(c.Z)<<4 | uint64(c.Y))
		}
	})
}
func (p *MultiBlockChange) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.SectionX); err != nil {
		return err
	}
	if err := fieldI32(&s.StructReader, 1, &p.SectionY); err != nil {
		return err
	}
	if err := fieldI32(&s.StructReader, 2, &p.SectionZ); err != nil {
		return err
	}
	return s.Field(3, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			v, err := r.ReadU64()
			if err != nil {
				return err
			}
			p.Changes = append(p.Changes, BlockChange{
				X:     uint8(v >> 8 & 0xf),
				Z:     uint8(v >> 4 & 0xf),
				Y:     uint8(v & 0xf),
				State: uint32(v >> 12),
			})
			return nil
		})
	})
}

// Particle spawns particles around a position.
type Particle struct {
	ID        int32
	Long      bool
	X, Y, Z   float64
	OffX      float64
	OffY      float64
	OffZ      float64
	DataFloat float32
	Count     int32
	Data      []byte
}

func (*Particle) cbKind() uint64 { return cbParticle }
func (*Particle) fields() uint64 { return 11 }
func (p *Particle) write(w *transfer.Writer) {
	w.WriteI32(p.ID)
	w.WriteBool(p.Long)
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteF64(p.OffX)
	w.WriteF64(p.OffY)
	w.WriteF64(p.OffZ)
	w.WriteF32(p.DataFloat)
	w.WriteI32(p.Count)
	w.WriteBytes(p.Data)
}
func (p *Particle) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.ID); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 1, &p.Long); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 2, &p.X); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 3, &p.Y); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 4, &p.Z); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 5, &p.OffX); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 6, &p.OffY); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 7, &p.OffZ); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 8, &p.DataFloat); err != nil {
		return err
	}
	if err := fieldI32(&s.StructReader, 9, &p.Count); err != nil {
		return err
	}
	return fieldBytes(&s.StructReader, 10, &p.Data)
}

// PlaySound plays a named sound event.
type PlaySound struct {
	Name     string
	Category uint8
	X, Y, Z  float64
	Volume   float32
	Pitch    float32
}

func (*PlaySound) cbKind() uint64 { return cbPlaySound }
func (*PlaySound) fields() uint64 { return 7 }
func (p *PlaySound) write(w *transfer.Writer) {
	w.WriteStr(p.Name)
	w.WriteU8(p.Category)
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteF32(p.Volume)
	w.WriteF32(p.Pitch)
}
func (p *PlaySound) read(s *transfer.EnumReader) error {
	if err := fieldStr(&s.StructReader, 0, &p.Name); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 1, &p.Category); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 2, &p.X); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 3, &p.Y); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 4, &p.Z); err != nil {
		return err
	}
	if err := fieldF32(&s.StructReader, 5, &p.Volume); err != nil {
		return err
	}
	return fieldF32(&s.StructReader, 6, &p.Pitch)
}

// PlayerHeader sets the tab-list header and footer.
type PlayerHeader struct {
	Header string
	Footer string
}

func (*PlayerHeader) cbKind() uint64 { return cbPlayerHeader }
func (*PlayerHeader) fields() uint64 { return 2 }
func (p *PlayerHeader) write(w *transfer.Writer) {
	w.WriteStr(p.Header)
	w.WriteStr(p.Footer)
}
func (p *PlayerHeader) read(s *transfer.EnumReader) error {
	if err := fieldStr(&s.StructReader, 0, &p.Header); err != nil {
		return err
	}
	return fieldStr(&s.StructReader, 1, &p.Footer)
}

// PlayerList actions.
const (
	PlayerListAdd uint8 = iota
	PlayerListUpdateGameMode
	PlayerListUpdateLatency
	PlayerListUpdateDisplayName
	PlayerListRemove
)

// PlayerListEntry is one player of a PlayerList update.
type PlayerListEntry struct {
	ID       uuid.UUID
	Name     string
	GameMode uint8
	Ping     int32
}

// PlayerList updates the tab list.
type PlayerList struct {
	Action  uint8
	Players []PlayerListEntry
}

func (*PlayerList) cbKind() uint64 { return cbPlayerList }
func (*PlayerList) fields() uint64 { return 2 }
func (p *PlayerList) write(w *transfer.Writer) {
	w.WriteU8(p.Action)
	w.WriteList(uint64(len(p.Players)), func(w *transfer.Writer) {
		for _, e := range p.Players {
			w.WriteStruct(4, func(w *transfer.Writer) {
				writeUUID(w, e.ID)
				w.WriteStr(e.Name)
				w.WriteU8(e.GameMode)
				w.WriteI32(e.Ping)
			})
		}
	})
}
func (p *PlayerList) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.Action); err != nil {
		return err
	}
	return s.Field(1, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			var e PlayerListEntry
			err := r.ReadStruct(func(s *transfer.StructReader) error {
				if err := fieldUUID(s, 0, &e.ID); err != nil {
					return err
				}
				if err := fieldStr(s, 1, &e.Name); err != nil {
					return err
				}
				if err := fieldU8(s, 2, &e.GameMode); err != nil {
					return err
				}
				return fieldI32(s, 3, &e.Ping)
			})
			p.Players = append(p.Players, e)
			return err
		})
	})
}

// PluginMessage forwards a plugin channel payload.
type PluginMessage struct {
	Channel string
	Data    []byte
}

func (*PluginMessage) cbKind() uint64 { return cbPluginMessage }
func (*PluginMessage) fields() uint64 { return 2 }
func (p *PluginMessage) write(w *transfer.Writer) {
	w.WriteStr(p.Channel)
	w.WriteBytes(p.Data)
}
func (p *PluginMessage) read(s *transfer.EnumReader) error {
	if err := fieldStr(&s.StructReader, 0, &p.Channel); err != nil {
		return err
	}
	return fieldBytes(&s.StructReader, 1, &p.Data)
}

// RemoveEntities despawns entities.
type RemoveEntities struct {
	EIDs []int32
}

func (*RemoveEntities) cbKind() uint64 { return cbRemoveEntities }
func (*RemoveEntities) fields() uint64 { return 1 }
func (p *RemoveEntities) write(w *transfer.Writer) {
	w.WriteList(uint64(len(p.EIDs)), func(w *transfer.Writer) {
		for _, e := range p.EIDs {
			w.WriteI32(e)
		}
	})
}
func (p *RemoveEntities) read(s *transfer.EnumReader) error {
	return s.Field(0, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			v, err := r.ReadI32()
			p.EIDs = append(p.EIDs, v)
			return err
		})
	})
}

// ScoreboardDisplay picks where an objective is rendered.
type ScoreboardDisplay struct {
	Position  uint8
	Objective string
}

func (*ScoreboardDisplay) cbKind() uint64 { return cbScoreboardDisplay }
func (*ScoreboardDisplay) fields() uint64 { return 2 }
func (p *ScoreboardDisplay) write(w *transfer.Writer) {
	w.WriteU8(p.Position)
	w.WriteStr(p.Objective)
}
func (p *ScoreboardDisplay) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.Position); err != nil {
		return err
	}
	return fieldStr(&s.StructReader, 1, &p.Objective)
}

// ScoreboardObjective creates, removes or renames an objective.
type ScoreboardObjective struct {
	Mode      uint8
	Objective string
	Value     string
	Ty        uint8
}

func (*ScoreboardObjective) cbKind() uint64 { return cbScoreboardObjective }
func (*ScoreboardObjective) fields() uint64 { return 4 }
func (p *ScoreboardObjective) write(w *transfer.Writer) {
	w.WriteU8(p.Mode)
	w.WriteStr(p.Objective)
	w.WriteStr(p.Value)
	w.WriteU8(p.Ty)
}
func (p *ScoreboardObjective) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.Mode); err != nil {
		return err
	}
	if err := fieldStr(&s.StructReader, 1, &p.Objective); err != nil {
		return err
	}
	if err := fieldStr(&s.StructReader, 2, &p.Value); err != nil {
		return err
	}
	return fieldU8(&s.StructReader, 3, &p.Ty)
}

// ScoreboardUpdate sets or clears one score.
type ScoreboardUpdate struct {
	Username  string
	Objective string
	Action    uint8
	Score     int32
}

func (*ScoreboardUpdate) cbKind() uint64 { return cbScoreboardUpdate }
func (*ScoreboardUpdate) fields() uint64 { return 4 }
func (p *ScoreboardUpdate) write(w *transfer.Writer) {
	w.WriteStr(p.Username)
	w.WriteStr(p.Objective)
	w.WriteU8(p.Action)
	w.WriteI32(p.Score)
}
func (p *ScoreboardUpdate) read(s *transfer.EnumReader) error {
	if err := fieldStr(&s.StructReader, 0, &p.Username); err != nil {
		return err
	}
	if err := fieldStr(&s.StructReader, 1, &p.Objective); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 2, &p.Action); err != nil {
		return err
	}
	return fieldI32(&s.StructReader, 3, &p.Score)
}

// SetPosLook moves the player camera.
type SetPosLook struct {
	X, Y, Z        float64
	Yaw            float32
	Pitch          float32
	Flags          uint8
	TeleportID     uint32
	ShouldDismount bool
}

func (*SetPosLook) cbKind() uint64 { return cbSetPosLook }
func (*SetPosLook) fields() uint64 { return 8 }
func (p *SetPosLook) write(w *transfer.Writer) {
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteF32(p.Yaw)
	w.WriteF32(p.Pitch)
	w.WriteU8(p.Flags)
	w.WriteU32(p.TeleportID)
	w.WriteBool(p.ShouldDismount)
}
func (p *SetPosLook) read(s *transfer.EnumReader) error {
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
	if err := fieldU8(&s.StructReader, 5, &p.Flags); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 6, &p.TeleportID); err != nil {
		return err
	}
	return fieldBool(&s.StructReader, 7, &p.ShouldDismount)
}

// SpawnEntity spawns any non-player entity.
type SpawnEntity struct {
	EID     int32
	ID      uuid.UUID
	Ty      uint32
	X, Y, Z float64
	Yaw     int8
	Pitch   int8
	HeadYaw int8
	VelX    int16
	VelY    int16
	VelZ    int16
	Data    int32
	Living  bool
	Meta    Metadata
}

func (*SpawnEntity) cbKind() uint64 { return cbSpawnEntity }
func (*SpawnEntity) fields() uint64 { return 15 }
func (p *SpawnEntity) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	writeUUID(w, p.ID)
	w.WriteU32(p.Ty)
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteI8(p.Yaw)
	w.WriteI8(p.Pitch)
	w.WriteI8(p.HeadYaw)
	w.WriteI16(p.VelX)
	w.WriteI16(p.VelY)
	w.WriteI16(p.VelZ)
	w.WriteI32(p.Data)
	w.WriteBool(p.Living)
	writeMetadata(w, p.Meta)
}
func (p *SpawnEntity) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldUUID(&s.StructReader, 1, &p.ID); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 2, &p.Ty); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 3, &p.X); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 4, &p.Y); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 5, &p.Z); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 6, &p.Yaw); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 7, &p.Pitch); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 8, &p.HeadYaw); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 9, &p.VelX); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 10, &p.VelY); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 11, &p.VelZ); err != nil {
		return err
	}
	if err := fieldI32(&s.StructReader, 12, &p.Data); err != nil {
		return err
	}
	if err := fieldBool(&s.StructReader, 13, &p.Living); err != nil {
		return err
	}
	return fieldMetadata(&s.StructReader, 14, &p.Meta)
}

// SpawnPlayer spawns another player.
type SpawnPlayer struct {
	EID     int32
	ID      uuid.UUID
	Ty      uint32
	X, Y, Z float64
	Yaw     int8
	Pitch   int8
	Meta    Metadata
}

func (*SpawnPlayer) cbKind() uint64 { return cbSpawnPlayer }
func (*SpawnPlayer) fields() uint64 { return 9 }
func (p *SpawnPlayer) write(w *transfer.Writer) {
	w.WriteI32(p.EID)
	writeUUID(w, p.ID)
	w.WriteU32(p.Ty)
	w.WriteF64(p.X)
	w.WriteF64(p.Y)
	w.WriteF64(p.Z)
	w.WriteI8(p.Yaw)
	w.WriteI8(p.Pitch)
	writeMetadata(w, p.Meta)
}
func (p *SpawnPlayer) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.EID); err != nil {
		return err
	}
	if err := fieldUUID(&s.StructReader, 1, &p.ID); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 2, &p.Ty); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 3, &p.X); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 4, &p.Y); err != nil {
		return err
	}
	if err := fieldF64(&s.StructReader, 5, &p.Z); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 6, &p.Yaw); err != nil {
		return err
	}
	if err := fieldI8(&s.StructReader, 7, &p.Pitch); err != nil {
		return err
	}
	return fieldMetadata(&s.StructReader, 8, &p.Meta)
}

// SwitchServer asks the proxy to move the client to another backend. The
// proxy consumes this packet; it is never forwarded.
type SwitchServer struct {
	Addrs []string
}

func (*SwitchServer) cbKind() uint64 { return cbSwitchServer }
func (*SwitchServer) fields() uint64 { return 1 }
func (p *SwitchServer) write(w *transfer.Writer) {
	w.WriteList(uint64(len(p.Addrs)), func(w *transfer.Writer) {
		for _, a := range p.Addrs {
			w.WriteStr(a)
		}
	})
}
func (p *SwitchServer) read(s *transfer.EnumReader) error {
	return s.Field(0, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			a, err := r.ReadStr()
			p.Addrs = append(p.Addrs, a)
			return err
		})
	})
}

// Tags carries the serialized registry tags (1.14+ clients only; dropped for
// older versions).
type Tags struct {
	Blocks   []byte
	Items    []byte
	Fluids   []byte
	Entities []byte
}

func (*Tags) cbKind() uint64 { return cbTags }
func (*Tags) fields() uint64 { return 4 }
func (p *Tags) write(w *transfer.Writer) {
	w.WriteBytes(p.Blocks)
	w.WriteBytes(p.Items)
	w.WriteBytes(p.Fluids)
	w.WriteBytes(p.Entities)
}
func (p *Tags) read(s *transfer.EnumReader) error {
	if err := fieldBytes(&s.StructReader, 0, &p.Blocks); err != nil {
		return err
	}
	if err := fieldBytes(&s.StructReader, 1, &p.Items); err != nil {
		return err
	}
	if err := fieldBytes(&s.StructReader, 2, &p.Fluids); err != nil {
		return err
	}
	return fieldBytes(&s.StructReader, 3, &p.Entities)
}

// Teams updates a scoreboard team.
type Teams struct {
	Team     string
	Action   uint8
	Entities []string
}

func (*Teams) cbKind() uint64 { return cbTeams }
func (*Teams) fields() uint64 { return 3 }
func (p *Teams) write(w *transfer.Writer) {
	w.WriteStr(p.Team)
	w.WriteU8(p.Action)
	w.WriteList(uint64(len(p.Entities)), func(w *transfer.Writer) {
		for _, e := range p.Entities {
			w.WriteStr(e)
		}
	})
}
func (p *Teams) read(s *transfer.EnumReader) error {
	if err := fieldStr(&s.StructReader, 0, &p.Team); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 1, &p.Action); err != nil {
		return err
	}
	return s.Field(2, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			e, err := r.ReadStr()
			p.Entities = append(p.Entities, e)
			return err
		})
	})
}

// Title actions.
const (
	TitleSet uint8 = iota
	TitleSubtitle
	TitleTimes
	TitleClear
	TitleReset
)

// Title shows a title, subtitle, or timing update.
type Title struct {
	Action  uint8
	Text    string
	FadeIn  uint32
	Stay    uint32
	FadeOut uint32
}

func (*Title) cbKind() uint64 { return cbTitle }
func (*Title) fields() uint64 { return 5 }
func (p *Title) write(w *transfer.Writer) {
	w.WriteU8(p.Action)
	w.WriteStr(p.Text)
	w.WriteU32(p.FadeIn)
	w.WriteU32(p.Stay)
	w.WriteU32(p.FadeOut)
}
func (p *Title) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.Action); err != nil {
		return err
	}
	if err := fieldStr(&s.StructReader, 1, &p.Text); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 2, &p.FadeIn); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 3, &p.Stay); err != nil {
		return err
	}
	return fieldU32(&s.StructReader, 4, &p.FadeOut)
}

// UpdateHealth sets health, food and saturation.
type UpdateHealth struct {
	Health     float32
	Food       int32
	Saturation float32
}

func (*UpdateHealth) cbKind() uint64 { return cbUpdateHealth }
func (*UpdateHealth) fields() uint64 { return 3 }
func (p *UpdateHealth) write(w *transfer.Writer) {
	w.WriteF32(p.Health)
	w.WriteI32(p.Food)
	w.WriteF32(p.Saturation)
}
func (p *UpdateHealth) read(s *transfer.EnumReader) error {
	if err := fieldF32(&s.StructReader, 0, &p.Health); err != nil {
		return err
	}
	if err := fieldI32(&s.StructReader, 1, &p.Food); err != nil {
		return err
	}
	return fieldF32(&s.StructReader, 2, &p.Saturation)
}

// UpdateViewPos recenters the client's loaded-chunk window (1.14+).
type UpdateViewPos struct {
	X, Z int32
}

func (*UpdateViewPos) cbKind() uint64 { return cbUpdateViewPos }
func (*UpdateViewPos) fields() uint64 { return 2 }
func (p *UpdateViewPos) write(w *transfer.Writer) {
	w.WriteI32(p.X)
	w.WriteI32(p.Z)
}
func (p *UpdateViewPos) read(s *transfer.EnumReader) error {
	if err := fieldI32(&s.StructReader, 0, &p.X); err != nil {
		return err
	}
	return fieldI32(&s.StructReader, 1, &p.Z)
}

// WindowItem sets one slot of a window.
type WindowItem struct {
	WID      uint8
	Slot     int16
	Revision uint32
	Item     Item
}

func (*WindowItem) cbKind() uint64 { return cbWindowItem }
func (*WindowItem) fields() uint64 { return 4 }
func (p *WindowItem) write(w *transfer.Writer) {
	w.WriteU8(p.WID)
	w.WriteI16(p.Slot)
	w.WriteU32(p.Revision)
	writeItem(w, p.Item)
}
func (p *WindowItem) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.WID); err != nil {
		return err
	}
	if err := fieldI16(&s.StructReader, 1, &p.Slot); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 2, &p.Revision); err != nil {
		return err
	}
	return fieldItem(&s.StructReader, 3, &p.Item)
}

// WindowItems replaces the whole contents of a window.
type WindowItems struct {
	WID      uint8
	Revision uint32
	Items    []Item
	Held     Item
}

func (*WindowItems) cbKind() uint64 { return cbWindowItems }
func (*WindowItems) fields() uint64 { return 4 }
func (p *WindowItems) write(w *transfer.Writer) {
	w.WriteU8(p.WID)
	w.WriteU32(p.Revision)
	w.WriteList(uint64(len(p.Items)), func(w *transfer.Writer) {
		for _, it := range p.Items {
			writeItem(w, it)
		}
	})
	writeItem(w, p.Held)
}
func (p *WindowItems) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.WID); err != nil {
		return err
	}
	if err := fieldU32(&s.StructReader, 1, &p.Revision); err != nil {
		return err
	}
	if err := s.Field(2, func(r *transfer.Reader) error {
		return r.ReadList(func(r *transfer.Reader) error {
			it, err := readItem(r)
			p.Items = append(p.Items, it)
			return err
		})
	}); err != nil {
		return err
	}
	return fieldItem(&s.StructReader, 3, &p.Held)
}

// WindowOpen opens a container window. Ty is the modern container type name
// (e.g. "minecraft:generic_9x3").
type WindowOpen struct {
	WID   uint8
	Ty    string
	Size  uint8
	Title string
}

func (*WindowOpen) cbKind() uint64 { return cbWindowOpen }
func (*WindowOpen) fields() uint64 { return 4 }
func (p *WindowOpen) write(w *transfer.Writer) {
	w.WriteU8(p.WID)
	w.WriteStr(p.Ty)
	w.WriteU8(p.Size)
	w.WriteStr(p.Title)
}
func (p *WindowOpen) read(s *transfer.EnumReader) error {
	if err := fieldU8(&s.StructReader, 0, &p.WID); err != nil {
		return err
	}
	if err := fieldStr(&s.StructReader, 1, &p.Ty); err != nil {
		return err
	}
	if err := fieldU8(&s.StructReader, 2, &p.Size); err != nil {
		return err
	}
	return fieldStr(&s.StructReader, 3, &p.Title)
}
