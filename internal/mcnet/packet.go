package mcnet

// Packet is one legacy Minecraft packet: the state-dependent numeric ID plus
// the body. The same on-wire ID means different things per connection state;
// interpreting it is the caller's job.
type Packet struct {
	ID int32
	*Buffer
}

// NewPacket creates an empty packet for writing.
func NewPacket(id int32) *Packet {
	return &Packet{ID: id, Buffer: NewBuffer(nil)}
}

// ParsePacket splits a decoded (decompressed, decrypted) packet payload into
// ID and body.
func ParsePacket(payload []byte) (*Packet, error) {
	b := NewBuffer(payload)
	id := b.ReadVarInt()
	if err := b.Err(); err != nil {
		return nil, err
	}
	return &Packet{ID: id, Buffer: NewBuffer(b.Remaining())}, nil
}

// payload returns the serialized id + body.
func (p *Packet) payload() []byte {
	head := NewBuffer(nil)
	head.WriteVarInt(p.ID)
	head.WriteBytes(p.Bytes())
	return head.Bytes()
}
