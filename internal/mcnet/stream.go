package mcnet

import (
	"bytes"
	"compress/zlib"
	"crypto/aes"
	"errors"
	"fmt"
	"io"
	"sync"
)

// maxPacketLen caps a single frame. Anything larger is corruption.
const maxPacketLen = 1 << 21

// readScratch holds the staging buffers used for socket reads. One is
// handed to a worker per poll, which keeps the large allocation off the
// per-packet path.
var readScratch = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 64*1024)
		return &b
	},
}

// Stream frames legacy Minecraft packets over a byte stream. It owns the
// compression threshold and encryption state of one side of a connection.
// Not safe for concurrent use; the connection's lock serializes access.
type Stream struct {
	conn io.ReadWriter

	// in holds decrypted bytes that do not yet form a whole packet. out
	// holds encrypted bytes waiting for a writable socket.
	in  []byte
	out []byte

	// compression is the negotiated threshold; 0 means disabled.
	compression int32

	enc *cfb8
	dec *cfb8
}

// NewStream frames packets over conn.
func NewStream(conn io.ReadWriter) *Stream {
	return &Stream{conn: conn}
}

// SetCompression enables the zlib threshold for all later packets, in both
// directions.
func (s *Stream) SetCompression(threshold int32) { s.compression = threshold }

// EnableEncryption switches both directions to AES/CFB8 with the shared
// secret as key and IV. Must be called between the last plaintext write and
// the first encrypted read.
func (s *Stream) EnableEncryption(secret *[16]byte) error {
	block, err := aes.NewCipher(secret[:])
	if err != nil {
		return err
	}
	s.enc = newCFB8(block, secret[:], false)
	s.dec = newCFB8(block, secret[:], true)
	return nil
}

// Feed decrypts and buffers bytes the caller read from the socket itself.
// Used by drivers that do their blocking reads off the connection lock.
func (s *Stream) Feed(data []byte) {
	if s.dec != nil {
		s.dec.XORKeyStream(data, data)
	}
	s.in = append(s.in, data...)
}

// Poll reads once from the connection into the incoming buffer. A closed
// peer surfaces as io.EOF.
func (s *Stream) Poll() error {
	bufp := readScratch.Get().(*[]byte)
	defer readScratch.Put(bufp)
	buf := *bufp
	n, err := s.conn.Read(buf)
	if n > 0 {
		if s.dec != nil {
			s.dec.XORKeyStream(buf[:n], buf[:n])
		}
		s.in = append(s.in, buf[:n]...)
	}
	return err
}

// ReadPacket extracts one packet from the incoming buffer. It returns
// (nil, nil) when no complete frame is buffered yet.
func (s *Stream) ReadPacket() (*Packet, error) {
	length, n := frameLen(s.in)
	if n == 0 {
		return nil, nil
	}
	if length < 0 || length > maxPacketLen {
		return nil, fmt.Errorf("mcnet: invalid packet length %d", length)
	}
	if len(s.in)-n < int(length) {
		return nil, nil
	}
	frame := s.in[n : n+int(length)]
	s.in = s.in[n+int(length):]

	if s.compression > 0 {
		b := NewBuffer(frame)
		uncompressed := b.ReadVarInt()
		if err := b.Err(); err != nil {
			return nil, err
		}
		if uncompressed == 0 {
			return ParsePacket(b.Remaining())
		}
		if uncompressed < 0 || uncompressed > maxPacketLen {
			return nil, fmt.Errorf("mcnet: invalid uncompressed length %d", uncompressed)
		}
		r, err := zlib.NewReader(bytes.NewReader(b.Remaining()))
		if err != nil {
			return nil, err
		}
		payload := make([]byte, 0, uncompressed)
		payload, err = readAll(r, payload, int(uncompressed))
		r.Close()
		if err != nil {
			return nil, err
		}
		return ParsePacket(payload)
	}
	return ParsePacket(frame)
}

func readAll(r io.Reader, dst []byte, expect int) ([]byte, error) {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		dst = append(dst, buf[:n]...)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(dst) > expect {
			return nil, fmt.Errorf("mcnet: inflated payload exceeds declared %d bytes", expect)
		}
	}
	if len(dst) != expect {
		return nil, fmt.Errorf("mcnet: inflated %d bytes, expected %d", len(dst), expect)
	}
	return dst, nil
}

// frameLen decodes the varint length prefix. n is 0 when the prefix itself
// is incomplete.
func frameLen(data []byte) (length int32, n int) {
	var out uint32
	for i := 0; ; i++ {
		if i >= len(data) || i >= 5 {
			return 0, 0
		}
		v := data[i]
		out |= uint32(v&0x7f) << (7 * i)
		if v&0x80 == 0 {
			return int32(out), i + 1
		}
	}
}

// WritePacket frames, compresses and encrypts one packet into the outgoing
// buffer. The bytes leave on the next Flush.
func (s *Stream) WritePacket(p *Packet) {
	payload := p.payload()
	frame := NewBuffer(nil)
	if s.compression > 0 {
		if int32(len(payload)) >= s.compression {
			var compressed bytes.Buffer
			zw := zlib.NewWriter(&compressed)
			zw.Write(payload)
			zw.Close()
			inner := NewBuffer(nil)
			inner.WriteVarInt(int32(len(payload)))
			inner.WriteBytes(compressed.Bytes())
			frame.WriteVarInt(int32(inner.Len()))
			frame.WriteBytes(inner.Bytes())
		} else {
			frame.WriteVarInt(int32(len(payload)) + 1)
			frame.WriteByte(0)
			frame.WriteBytes(payload)
		}
	} else {
		frame.WriteVarInt(int32(len(payload)))
		frame.WriteBytes(payload)
	}
	out := frame.Bytes()
	if s.enc != nil {
		s.enc.XORKeyStream(out, out)
	}
	s.out = append(s.out, out...)
}

// Flush writes the outgoing buffer to the connection.
func (s *Stream) Flush() error {
	for len(s.out) > 0 {
		n, err := s.conn.Write(s.out)
		s.out = s.out[n:]
		if err != nil {
			return err
		}
	}
	return nil
}

// Buffered reports whether unsent bytes remain.
func (s *Stream) Buffered() bool { return len(s.out) > 0 }

// ErrClosed is returned by connection drivers when the peer went away in an
// orderly fashion.
var ErrClosed = errors.New("mcnet: connection closed")
