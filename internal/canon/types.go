// Package canon defines the version-independent packets exchanged between
// the proxy and its backend, and their canonical encoding.
package canon

import (
	"encoding/json"

	"github.com/google/uuid"

	"gatewire/internal/transfer"
)

// Pos is a block position in world coordinates.
type Pos struct {
	X, Y, Z int32
}

func writePos(w *transfer.Writer, p Pos) {
	w.WriteStruct(3, func(w *transfer.Writer) {
		w.WriteI32(p.X)
		w.WriteI32(p.Y)
		w.WriteI32(p.Z)
	})
}

func readPos(r *transfer.Reader) (Pos, error) {
	var p Pos
	err := r.ReadStruct(func(s *transfer.StructReader) error {
		if err := s.Field(0, func(r *transfer.Reader) error { var e error; p.X, e = r.ReadI32(); return e }); err != nil {
			return err
		}
		if err := s.Field(1, func(r *transfer.Reader) error { var e error; p.Y, e = r.ReadI32(); return e }); err != nil {
			return err
		}
		return s.Field(2, func(r *transfer.Reader) error { var e error; p.Z, e = r.ReadI32(); return e })
	})
	return p, err
}

// ToLong packs the position in the modern (1.14+) on-wire long form.
func (p Pos) ToLong() uint64 {
	return uint64(p.X&0x3ffffff)<<38 | uint64(p.Z&0x3ffffff)<<12 | uint64(p.Y&0xfff)
}

// ToOldLong packs the position in the 1.8-1.13 on-wire long form.
func (p Pos) ToOldLong() uint64 {
	return uint64(p.X&0x3ffffff)<<38 | uint64(p.Y&0xfff)<<26 | uint64(p.Z&0x3ffffff)
}

// Text is a chat component the proxy builds itself (kick reasons, status
// MOTD). Backend chat arrives already serialized.
type Text struct {
	Text  string `json:"text"`
	Color string `json:"color,omitempty"`
}

// JSON renders the component as the JSON form the client expects.
func (c Text) JSON() string {
	b, _ := json.Marshal(c)
	return string(b)
}

func writeUUID(w *transfer.Writer, id uuid.UUID) {
	w.WriteBytes(id[:])
}

func readUUID(r *transfer.Reader) (uuid.UUID, error) {
	b, err := r.ReadBytes()
	if err != nil {
		return uuid.UUID{}, err
	}
	var id uuid.UUID
	copy(id[:], b)
	return id, nil
}

// Item is a canonical item stack. ID is in the newest numeric space; Damage
// only survives translation to 1.8-era clients.
type Item struct {
	ID     int32
	Count  uint8
	Damage int16
	NBT    []byte
}

// Empty reports whether the stack is the empty slot.
func (i Item) Empty() bool { return i.ID <= 0 || i.Count == 0 }

func writeItem(w *transfer.Writer, it Item) {
	w.WriteStruct(4, func(w *transfer.Writer) {
		w.WriteI32(it.ID)
		w.WriteU8(it.Count)
		w.WriteI16(it.Damage)
		w.WriteBytes(it.NBT)
	})
}

func readItem(r *transfer.Reader) (Item, error) {
	var it Item
	err := r.ReadStruct(func(s *transfer.StructReader) error {
		if err := s.Field(0, func(r *transfer.Reader) error { var e error; it.ID, e = r.ReadI32(); return e }); err != nil {
			return err
		}
		if err := s.Field(1, func(r *transfer.Reader) error { var e error; it.Count, e = r.ReadU8(); return e }); err != nil {
			return err
		}
		if err := s.Field(2, func(r *transfer.Reader) error { var e error; it.Damage, e = r.ReadI16(); return e }); err != nil {
			return err
		}
		return s.Field(3, func(r *transfer.Reader) error {
			b, e := r.ReadBytes()
			if e != nil {
				return e
			}
			if len(b) > 0 {
				it.NBT = append([]byte(nil), b...)
			}
			return nil
		})
	})
	return it, err
}

// MetaKind tags one entity metadata value.
type MetaKind uint8

const (
	MetaByte MetaKind = iota
	MetaVarInt
	MetaFloat
	MetaString
	MetaChat
	MetaItem
	MetaBool
	MetaPos
)

// MetaField is one entry of an entity metadata map.
type MetaField struct {
	Kind   MetaKind
	Byte   int8
	VarInt int32
	Float  float32
	Str    string
	Item   Item
	Bool   bool
	Pos    Pos
}

// Metadata is a canonical entity metadata map, keyed by the modern index.
type Metadata struct {
	Fields map[uint8]MetaField
}

// Empty reports whether no fields are set.
func (m Metadata) Empty() bool { return len(m.Fields) == 0 }

func writeMetadata(w *transfer.Writer, m Metadata) {
	w.WriteList(uint64(len(m.Fields)), func(w *transfer.Writer) {
		// Iterate in index order so encoding is deterministic.
		for i := 0; i < 256; i++ {
			f, ok := m.Fields[uint8(i)]
			if !ok {
				continue
			}
			w.WriteStruct(2, func(w *transfer.Writer) {
				w.WriteU8(uint8(i))
				w.WriteEnum(uint64(f.Kind), 1, func(w *transfer.Writer) {
					switch f.Kind {
					case MetaByte:
						w.WriteI8(f.Byte)
					case MetaVarInt:
						w.WriteI32(f.VarInt)
					case MetaFloat:
						w.WriteF32(f.Float)
					case MetaString, MetaChat:
						w.WriteStr(f.Str)
					case MetaItem:
						writeItem(w, f.Item)
					case MetaBool:
						w.WriteBool(f.Bool)
					case MetaPos:
						writePos(w, f.Pos)
					}
				})
			})
		}
	})
}

func readMetadata(r *transfer.Reader) (Metadata, error) {
	m := Metadata{Fields: make(map[uint8]MetaField)}
	err := r.ReadList(func(r *transfer.Reader) error {
		var index uint8
		var f MetaField
		return r.ReadStruct(func(s *transfer.StructReader) error {
			if err := s.Field(0, func(r *transfer.Reader) error { var e error; index, e = r.ReadU8(); return e }); err != nil {
				return err
			}
			err := s.Field(1, func(r *transfer.Reader) error {
				return r.ReadEnum(func(e *transfer.EnumReader) error {
					f.Kind = MetaKind(e.Variant())
					switch f.Kind {
					case MetaByte:
						return e.Field(0, func(r *transfer.Reader) error { var err error; f.Byte, err = r.ReadI8(); return err })
					case MetaVarInt:
						return e.Field(0, func(r *transfer.Reader) error { var err error; f.VarInt, err = r.ReadI32(); return err })
					case MetaFloat:
						return e.Field(0, func(r *transfer.Reader) error { var err error; f.Float, err = r.ReadF32(); return err })
					case MetaString, MetaChat:
						return e.Field(0, func(r *transfer.Reader) error { var err error; f.Str, err = r.ReadStr(); return err })
					case MetaItem:
						return e.Field(0, func(r *transfer.Reader) error { var err error; f.Item, err = readItem(r); return err })
					case MetaBool:
						return e.Field(0, func(r *transfer.Reader) error { var err error; f.Bool, err = r.ReadBool(); return err })
					case MetaPos:
						return e.Field(0, func(r *transfer.Reader) error { var err error; f.Pos, err = readPos(r); return err })
					default:
						return transfer.InvalidVariantError(e.Variant())
					}
				})
			})
			if err != nil {
				return err
			}
			m.Fields[index] = f
			return nil
		})
	})
	return m, err
}

// helpers shared by the packet decoders

func fieldU8(s *transfer.StructReader, i uint64, v *uint8) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadU8(); return e })
}

func fieldU16(s *transfer.StructReader, i uint64, v *uint16) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadU16(); return e })
}

func fieldU32(s *transfer.StructReader, i uint64, v *uint32) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadU32(); return e })
}

func fieldU64(s *transfer.StructReader, i uint64, v *uint64) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadU64(); return e })
}

func fieldI8(s *transfer.StructReader, i uint64, v *int8) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadI8(); return e })
}

func fieldI16(s *transfer.StructReader, i uint64, v *int16) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadI16(); return e })
}

func fieldI32(s *transfer.StructReader, i uint64, v *int32) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadI32(); return e })
}

func fieldI64(s *transfer.StructReader, i uint64, v *int64) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadI64(); return e })
}

func fieldBool(s *transfer.StructReader, i uint64, v *bool) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadBool(); return e })
}

func fieldF32(s *transfer.StructReader, i uint64, v *float32) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadF32(); return e })
}

func fieldF64(s *transfer.StructReader, i uint64, v *float64) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadF64(); return e })
}

func fieldStr(s *transfer.StructReader, i uint64, v *string) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = r.ReadStr(); return e })
}

func fieldBytes(s *transfer.StructReader, i uint64, v *[]byte) error {
	return s.Field(i, func(r *transfer.Reader) error {
		b, e := r.ReadBytes()
		if e != nil {
			return e
		}
		*v = append([]byte(nil), b...)
		return nil
	})
}

func fieldPos(s *transfer.StructReader, i uint64, v *Pos) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = readPos(r); return e })
}

func fieldUUID(s *transfer.StructReader, i uint64, v *uuid.UUID) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = readUUID(r); return e })
}

func fieldItem(s *transfer.StructReader, i uint64, v *Item) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = readItem(r); return e })
}

func fieldMetadata(s *transfer.StructReader, i uint64, v *Metadata) error {
	return s.Field(i, func(r *transfer.Reader) error { var e error; *v, e = readMetadata(r); return e })
}
