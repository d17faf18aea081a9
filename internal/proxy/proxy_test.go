package proxy

import (
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"io"
	"net"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"gatewire/internal/canon"
	"gatewire/internal/config"
	"gatewire/internal/mcnet"
	"gatewire/internal/transfer"
	"gatewire/internal/version"
)

func TestJavaHexDigest(t *testing.T) {
	// The classic Mojang auth digest vectors.
	tests := []struct {
		in   string
		want string
	}{
		{"Notch", "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48"},
		{"jeb_", "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1"},
		{"simon", "88e16a1019277b15d58faf0541e11910eb756f6"},
	}
	for _, tt := range tests {
		sum := sha1.Sum([]byte(tt.in))
		if got := javaHexDigest(sum[:]); got != tt.want {
			t.Errorf("javaHexDigest(sha1(%q)) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestServerHash(t *testing.T) {
	// serverHash must concatenate id, secret and key before digesting.
	secret := []byte{1, 2, 3}
	key := []byte{4, 5}
	h := sha1.New()
	h.Write([]byte(""))
	h.Write(secret)
	h.Write(key)
	want := javaHexDigest(h.Sum(nil))
	if got := serverHash("", secret, key); got != want {
		t.Errorf("serverHash = %s, want %s", got, want)
	}
}

func TestOfflineUUID(t *testing.T) {
	a := offlineUUID("Notch")
	b := offlineUUID("Notch")
	if a != b {
		t.Error("offline uuid must be deterministic")
	}
	if a == offlineUUID("jeb_") {
		t.Error("different names must yield different uuids")
	}
	// MD5("Notch") spelled out, dashed.
	if a.String() != "1d211623-b9a1-3d4c-a166-1cd2ce03b749" {
		t.Errorf("uuid = %s", a.String())
	}
}

// harness runs one connection against an in-memory client and a real
// loopback backend listener.
type harness struct {
	t       *testing.T
	srv     *Server
	conn    *Conn
	client  net.Conn // test side of the client pipe
	fromSrv *bytes.Buffer
	mu      sync.Mutex
	backend net.Listener
}

func newHarness(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { ln.Close() })
	cfg.Backend = ln.Addr().String()

	srv, err := NewServer(cfg, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	serverSide, clientSide := net.Pipe()
	h := &harness{t: t, srv: srv, client: clientSide, fromSrv: &bytes.Buffer{}, backend: ln}
	h.conn = newConn(srv, serverSide, tokenFirst)
	srv.register(h.conn)
	// Pump everything the proxy writes into a buffer the test can parse.
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := clientSide.Read(buf)
			if n > 0 {
				h.mu.Lock()
				h.fromSrv.Write(buf[:n])
				h.mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()
	return h
}

// send frames packets the way a client would and feeds them to the
// connection.
func (h *harness) send(packets ...*mcnet.Packet) {
	var wire bytes.Buffer
	out := mcnet.NewStream(&wire)
	for _, p := range packets {
		out.WritePacket(p)
	}
	if err := out.Flush(); err != nil {
		h.t.Fatal(err)
	}
	h.conn.mu.Lock()
	h.conn.handleClientData(wire.Bytes())
	h.conn.mu.Unlock()
}

// replies waits until the proxy has written at least want packets and
// parses them.
func (h *harness) replies(want int) []*mcnet.Packet {
	deadline := time.Now().Add(time.Second)
	var out []*mcnet.Packet
	for time.Now().Before(deadline) {
		h.mu.Lock()
		data := append([]byte(nil), h.fromSrv.Bytes()...)
		h.mu.Unlock()
		in := mcnet.NewStream(&bytes.Buffer{})
		in.Feed(data)
		out = out[:0]
		for {
			p, err := in.ReadPacket()
			if err != nil {
				h.t.Fatal(err)
			}
			if p == nil {
				break
			}
			out = append(out, p)
		}
		if len(out) >= want {
			return out
		}
		time.Sleep(5 * time.Millisecond)
	}
	return out
}

func handshakePacket(protocol int32, next int32) *mcnet.Packet {
	p := mcnet.NewPacket(0x00)
	p.WriteVarInt(protocol)
	p.WriteString("localhost")
	p.WriteU16(25565)
	p.WriteVarInt(next)
	return p
}

func TestStatusScenario(t *testing.T) {
	h := newHarness(t, config.Default())

	h.send(handshakePacket(47, 1))
	if h.conn.state != StateStatus {
		t.Fatalf("state = %v, want Status", h.conn.state)
	}

	h.send(mcnet.NewPacket(0x00)) // status request
	ping := mcnet.NewPacket(0x01)
	ping.WriteU64(0x1122334455667788)
	h.send(ping)

	replies := h.replies(2)
	if len(replies) != 2 {
		t.Fatalf("got %d replies, want status + pong", len(replies))
	}
	var status struct {
		Version struct {
			Protocol int32 `json:"protocol"`
		} `json:"version"`
	}
	if err := json.Unmarshal([]byte(replies[0].ReadString(1<<15)), &status); err != nil {
		t.Fatal(err)
	}
	if status.Version.Protocol != 47 {
		t.Errorf("status protocol = %d, want 47", status.Version.Protocol)
	}
	if replies[1].ID != 0x01 || replies[1].ReadU64() != 0x1122334455667788 {
		t.Error("pong must echo the ping payload")
	}
	if !h.conn.closed {
		t.Error("connection must close after the pong")
	}
}

func TestOfflineLoginScenario(t *testing.T) {
	cfg := config.Default()
	cfg.OnlineMode = false
	cfg.CompressionThreshold = 0
	h := newHarness(t, cfg)

	// Accept the backend link and capture the Join frame.
	joinCh := make(chan canon.Join, 1)
	go func() {
		sock, err := h.backend.Accept()
		if err != nil {
			return
		}
		defer sock.Close()
		buf := make([]byte, 512)
		var data []byte
		for {
			n, err := sock.Read(buf)
			data = append(data, buf[:n]...)
			if body, adv, ferr := transfer.Frame(data); ferr == nil && adv > 0 {
				j, jerr := canon.ReadJoin(transfer.NewReader(body))
				if jerr != nil {
					t.Error(jerr)
					return
				}
				joinCh <- j
				return
			}
			if err != nil {
				return
			}
		}
	}()

	h.send(handshakePacket(47, 2))
	login := mcnet.NewPacket(0x00)
	login.WriteString("Notch")
	h.send(login)

	if h.conn.state != StatePlay {
		t.Fatalf("state = %v, want Play", h.conn.state)
	}

	replies := h.replies(1)
	if len(replies) != 1 {
		t.Fatalf("got %d replies, want login success", len(replies))
	}
	success := replies[0]
	if success.ID != 0x02 {
		t.Fatalf("reply id = %#x, want login success", success.ID)
	}
	if got := success.ReadString(40); got != offlineUUID("Notch").String() {
		t.Errorf("uuid = %s", got)
	}
	if got := success.ReadString(16); got != "Notch" {
		t.Errorf("name = %q", got)
	}

	select {
	case j := <-joinCh:
		if j.Mode != canon.JoinNew || j.Username != "Notch" || j.Ver != 47 || j.UUID != offlineUUID("Notch") {
			t.Errorf("join = %+v", j)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("backend never received the join frame")
	}
}

func TestLoginCompressionNegotiated(t *testing.T) {
	cfg := config.Default()
	cfg.CompressionThreshold = 256
	h := newHarness(t, cfg)
	go func() {
		sock, err := h.backend.Accept()
		if err == nil {
			defer sock.Close()
			io.Copy(io.Discard, sock)
		}
	}()

	h.send(handshakePacket(754, 2))
	login := mcnet.NewPacket(0x00)
	login.WriteString("Notch")
	h.send(login)

	// First reply is Set Compression, sent before compression engages.
	h.mu.Lock()
	raw := append([]byte(nil), h.fromSrv.Bytes()...)
	h.mu.Unlock()
	plain := mcnet.NewStream(&bytes.Buffer{})
	plain.Feed(raw)
	first, err := plain.ReadPacket()
	if err != nil || first == nil {
		t.Fatalf("first reply: %v, %v", first, err)
	}
	if first.ID != 0x03 || first.ReadVarInt() != 256 {
		t.Fatalf("first reply = %#x, want set compression 256", first.ID)
	}
}

func TestHandshakeRejectsBadState(t *testing.T) {
	h := newHarness(t, config.Default())
	h.send(handshakePacket(47, 3))
	if !h.conn.closed {
		t.Error("next=3 must drop the connection")
	}

	h2 := newHarness(t, config.Default())
	h2.send(handshakePacket(1, 2)) // unknown protocol id
	if !h2.conn.closed {
		t.Error("login with an invalid version must drop the connection")
	}
}

func TestPlayForwardsCanonical(t *testing.T) {
	cfg := config.Default()
	h := newHarness(t, cfg)
	got := make(chan []byte, 1)
	go func() {
		sock, err := h.backend.Accept()
		if err != nil {
			return
		}
		defer sock.Close()
		buf := make([]byte, 4096)
		var all []byte
		for {
			n, err := sock.Read(buf)
			all = append(all, buf[:n]...)
			// Join frame + at least one packet frame.
			if body, adv, _ := transfer.Frame(all); adv > 0 {
				rest := all[adv:]
				_ = body
				if _, adv2, _ := transfer.Frame(rest); adv2 > 0 {
					got <- rest[:adv2]
					return
				}
			}
			if err != nil {
				return
			}
		}
	}()

	h.send(handshakePacket(47, 2))
	login := mcnet.NewPacket(0x00)
	login.WriteString("Steve")
	h.send(login)
	if h.conn.state != StatePlay {
		t.Fatalf("state = %v", h.conn.state)
	}

	// A 1.8 chat message becomes a canonical SBChat frame.
	chat := mcnet.NewPacket(0x01)
	chat.WriteString("hello world")
	h.send(chat)

	select {
	case frame := <-got:
		body, n, err := transfer.Frame(frame)
		if err != nil || n == 0 {
			t.Fatalf("frame: %v", err)
		}
		sb, err := canon.ReadSB(transfer.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		msg, ok := sb.(*canon.SBChat)
		if !ok || msg.Msg != "hello world" {
			t.Fatalf("parsed %+v", sb)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("backend never saw the chat packet")
	}
}

func TestWriteCBTranslatesToClient(t *testing.T) {
	h := newHarness(t, config.Default())
	go func() {
		if sock, err := h.backend.Accept(); err == nil {
			defer sock.Close()
			io.Copy(io.Discard, sock)
		}
	}()
	h.send(handshakePacket(47, 2))
	login := mcnet.NewPacket(0x00)
	login.WriteString("Steve")
	h.send(login)
	h.replies(1) // drain login success

	h.conn.mu.Lock()
	h.mu.Lock()
	h.fromSrv.Reset()
	h.mu.Unlock()
	h.conn.writeCB(&canon.BlockUpdate{Pos: canon.Pos{X: 10, Y: 64, Z: -3}, State: 13})
	h.conn.flushSendQueue()
	h.conn.mu.Unlock()

	replies := h.replies(1)
	if len(replies) != 1 || replies[0].ID != 0x23 {
		t.Fatalf("replies = %v", replies)
	}
}

func TestVersionEcho(t *testing.T) {
	// The status reply echoes the client's own protocol when supported.
	h := newHarness(t, config.Default())
	h.send(handshakePacket(int32(version.V1_19.ID()), 1))
	h.send(mcnet.NewPacket(0x00))
	replies := h.replies(1)
	if len(replies) == 0 {
		t.Fatal("no status reply")
	}
	var status struct {
		Version struct {
			Protocol int32 `json:"protocol"`
		} `json:"version"`
	}
	if err := json.Unmarshal([]byte(replies[0].ReadString(1<<15)), &status); err != nil {
		t.Fatal(err)
	}
	if status.Version.Protocol != version.V1_19.ID() {
		t.Errorf("protocol = %d", status.Version.Protocol)
	}
}
