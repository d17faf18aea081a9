package proxy

import (
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/gammazero/deque"
	"github.com/rs/xid"
	"go.uber.org/zap"

	"gatewire/internal/canon"
	"gatewire/internal/codec"
	"gatewire/internal/mcnet"
	"gatewire/internal/transfer"
	"gatewire/internal/version"
)

// State is the connection's protocol state.
type State int

const (
	StateHandshake State = iota
	StateStatus
	StateLogin
	StatePlay
	StateInvalid
)

func stateFromNext(next int32) State {
	switch next {
	case 1:
		return StateStatus
	case 2:
		return StateLogin
	default:
		return StateInvalid
	}
}

// cbQueueSize bounds the clientbound packet queue per connection. When the
// queue is full, enqueueCB drains it inline on the producing worker; the
// producer does not block.
const cbQueueSize = 512

// Conn is one client connection and its backend link. All mutable state is
// guarded by mu; workers take the lock before touching anything.
type Conn struct {
	srv   *Server
	log   *zap.Logger
	token uint32

	mu sync.Mutex

	clientSock net.Conn
	client     *mcnet.Stream

	state    State
	ver      version.ProtocolVersion
	username string
	info     *LoginInfo
	// verifyToken is the four random bytes echoed back inside the
	// encryption response.
	verifyToken [4]byte

	backendSock net.Conn
	fromBackend []byte
	toBackend   []byte

	cbQueue chan canon.CB
	// sendQueue holds translated legacy packets between translation and the
	// next client flush.
	sendQueue deque.Deque[*mcnet.Packet]

	closed bool
	inPlay bool
}

func newConn(srv *Server, sock net.Conn, token uint32) *Conn {
	if tcp, ok := sock.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
	}
	return &Conn{
		srv:        srv,
		log:        srv.log.With(zap.String("conn", xid.New().String()), zap.String("remote", sock.RemoteAddr().String())),
		token:      token,
		clientSock: sock,
		client:     mcnet.NewStream(sock),
		cbQueue:    make(chan canon.CB, cbQueueSize),
	}
}

// handleClientData runs under the lock with bytes freshly read from the
// client socket.
func (c *Conn) handleClientData(data []byte) {
	if c.closed {
		return
	}
	c.client.Feed(data)
	for {
		p, err := c.client.ReadPacket()
		if err != nil {
			c.log.Warn("client stream corrupt", zap.Error(err))
			c.teardown()
			return
		}
		if p == nil {
			return
		}
		if err := c.handleClientPacket(p); err != nil {
			if !errors.Is(err, mcnet.ErrClosed) {
				c.log.Warn("dropping client", zap.Error(err))
			}
			c.teardown()
			return
		}
		if c.closed {
			return
		}
	}
}

func (c *Conn) handleClientPacket(p *mcnet.Packet) error {
	switch c.state {
	case StateHandshake:
		return c.handleHandshake(p)
	case StateStatus:
		return c.handleStatus(p)
	case StateLogin:
		return c.handleLogin(p)
	case StatePlay:
		return c.handlePlay(p)
	default:
		return fmt.Errorf("packet %#x in invalid state", p.ID)
	}
}

func (c *Conn) handleHandshake(p *mcnet.Packet) error {
	if p.ID != 0 {
		return fmt.Errorf("unknown handshake packet %#x", p.ID)
	}
	verID := p.ReadVarInt()
	p.ReadString(255) // server address
	p.ReadU16()       // port
	next := p.ReadVarInt()
	if err := p.Err(); err != nil {
		return err
	}
	c.ver = version.FromID(verID)
	c.state = stateFromNext(next)
	switch c.state {
	case StateStatus:
		return nil
	case StateLogin:
		if c.ver == version.Invalid {
			return fmt.Errorf("client sent an invalid version %d", verID)
		}
		return nil
	default:
		return fmt.Errorf("client tried to switch to state %d", next)
	}
}

func (c *Conn) handleStatus(p *mcnet.Packet) error {
	switch p.ID {
	case 0: // status request
		out := mcnet.NewPacket(0x00)
		out.WriteString(c.buildStatus())
		c.client.WritePacket(out)
		return c.client.Flush()
	case 1: // ping
		payload := p.ReadU64()
		if err := p.Err(); err != nil {
			return err
		}
		out := mcnet.NewPacket(0x01)
		out.WriteU64(payload)
		c.client.WritePacket(out)
		if err := c.client.Flush(); err != nil {
			return err
		}
		// The client is done after the pong.
		c.teardown()
		return nil
	default:
		return fmt.Errorf("unknown status packet %#x", p.ID)
	}
}

func (c *Conn) handleLogin(p *mcnet.Packet) error {
	switch p.ID {
	case 0: // login start
		if c.username != "" {
			return errors.New("client sent two login packets")
		}
		name := p.ReadString(16)
		if err := p.Err(); err != nil {
			return err
		}
		c.username = name
		if c.srv.derKey == nil {
			// Offline mode: a deterministic UUID from the username.
			c.info = &LoginInfo{ID: offlineUUID(name), Name: name}
			c.sendCompression()
			return c.finishLogin()
		}
		if _, err := rand.Read(c.verifyToken[:]); err != nil {
			return err
		}
		out := mcnet.NewPacket(0x01)
		out.WriteString("") // server id
		out.WriteVarIntPrefixedBytes(c.srv.derKey)
		out.WriteVarIntPrefixedBytes(c.verifyToken[:])
		c.client.WritePacket(out)
		return c.client.Flush()

	case 1: // encryption response
		if c.username == "" {
			return errors.New("client sent encryption response before login start")
		}
		encSecret := p.ReadVarIntPrefixedBytes()
		encToken := p.ReadVarIntPrefixedBytes()
		if err := p.Err(); err != nil {
			return err
		}
		secret, err := rsa.DecryptPKCS1v15(rand.Reader, c.srv.key, encSecret)
		if err != nil {
			return fmt.Errorf("unable to decrypt secret: %w", err)
		}
		token, err := rsa.DecryptPKCS1v15(rand.Reader, c.srv.key, encToken)
		if err != nil {
			return fmt.Errorf("unable to decrypt token: %w", err)
		}
		if !bytes.Equal(token, c.verifyToken[:]) {
			return fmt.Errorf("invalid verify token (len %d)", len(token))
		}
		if len(secret) != 16 {
			return fmt.Errorf("invalid secret (len %d, expected 16)", len(secret))
		}
		var key [16]byte
		copy(key[:], secret)
		// The client expects everything from here on encrypted, including a
		// disconnect.
		if err := c.client.EnableEncryption(&key); err != nil {
			return err
		}
		info, err := hasJoined(c.username, serverHash("", secret, c.srv.derKey))
		if err != nil {
			var rejected ErrAuthRejected
			if errors.As(err, &rejected) {
				c.srv.metrics.AuthFailures.Inc()
				c.log.Info("session server rejected client", zap.Int("status", rejected.Status))
				c.disconnect(canon.Text{Text: "Invalid auth token! Please re-login (restart your game and launcher)"})
				return nil
			}
			return err
		}
		c.info = info
		c.sendCompression()
		return c.finishLogin()

	default:
		return fmt.Errorf("unknown login packet %#x", p.ID)
	}
}

// sendCompression negotiates the zlib threshold. Sent only when enabled,
// and always before Login Success.
func (c *Conn) sendCompression() {
	threshold := c.srv.cfg.CompressionThreshold
	if threshold <= 0 {
		return
	}
	out := mcnet.NewPacket(0x03)
	out.WriteVarInt(threshold)
	c.client.WritePacket(out)
	c.client.SetCompression(threshold)
}

// finishLogin sends Login Success, enters Play, and opens the backend link.
func (c *Conn) finishLogin() error {
	out := mcnet.NewPacket(0x02)
	if c.ver >= version.V1_16 {
		out.WriteBytes(c.info.ID[:])
	} else {
		out.WriteString(c.info.ID.String())
	}
	out.WriteString(c.info.Name)
	if c.ver >= version.V1_19 {
		out.WriteVarInt(0) // properties
	}
	c.client.WritePacket(out)
	if err := c.client.Flush(); err != nil {
		return err
	}
	c.state = StatePlay
	c.inPlay = true
	c.srv.online.Inc()
	return c.connectBackend(c.srv.cfg.Backend, canon.JoinNew)
}

// connectBackend dials the backend and writes the Join record as the first
// frame on the link.
func (c *Conn) connectBackend(addr string, mode canon.JoinMode) error {
	c.log.Info("connecting to backend", zap.String("addr", addr))
	sock, err := c.srv.transport.dial(addr)
	if err != nil {
		return err
	}
	c.backendSock = sock
	c.fromBackend = nil
	c.toBackend = nil

	w := transfer.NewWriter(nil)
	canon.WriteJoin(w, canon.Join{
		Mode:     mode,
		Username: c.username,
		UUID:     c.info.ID,
		Ver:      c.ver.ID(),
	})
	c.toBackend = transfer.AppendFrame(c.toBackend, w.Bytes())
	if err := c.flushBackend(); err != nil {
		return err
	}
	c.srv.startBackendReader(c, sock)
	return nil
}

func (c *Conn) handlePlay(p *mcnet.Packet) error {
	sb, ok, err := codec.FromTCP(p, c.ver, c.srv.conv)
	if err != nil {
		return err
	}
	if !ok {
		c.srv.metrics.PacketsDropped.Inc()
		c.log.Debug("server-bound packet has no canonical form", zap.Int32("id", p.ID))
		return nil
	}
	c.srv.metrics.PacketsServerbound.Inc()
	w := transfer.NewWriter(nil)
	canon.WriteSB(w, sb)
	c.toBackend = transfer.AppendFrame(c.toBackend, w.Bytes())
	return c.flushBackend()
}

func (c *Conn) flushBackend() error {
	for len(c.toBackend) > 0 {
		n, err := c.backendSock.Write(c.toBackend)
		c.toBackend = c.toBackend[n:]
		if err != nil {
			return fmt.Errorf("backend write: %w", err)
		}
	}
	return nil
}

// handleBackendData runs under the lock with bytes freshly read from the
// backend socket. Complete frames become canonical packets on the queue.
func (c *Conn) handleBackendData(data []byte) {
	if c.closed {
		return
	}
	c.fromBackend = append(c.fromBackend, data...)
	for {
		body, n, err := transfer.Frame(c.fromBackend)
		if err != nil {
			c.log.Warn("backend framing corrupt", zap.Error(err))
			c.teardown()
			return
		}
		if n == 0 {
			return
		}
		c.fromBackend = c.fromBackend[n:]
		p, err := canon.ReadCB(transfer.NewReader(body))
		if err != nil {
			if transfer.Recoverable(err) {
				c.srv.metrics.PacketsDropped.Inc()
				c.log.Warn("unknown canonical packet", zap.Error(err))
				continue
			}
			c.log.Warn("backend stream corrupt", zap.Error(err))
			c.teardown()
			return
		}
		c.enqueueCB(p)
	}

}

// enqueueCB pushes a clientbound packet and wakes the dispatcher. If the
// queue is full the caller (a worker holding our lock) drains it inline
// rather than deadlocking against itself.
func (c *Conn) enqueueCB(p canon.CB) {
	select {
	case c.cbQueue <- p:
	default:
		c.drainQueue()
		c.cbQueue <- p
	}
	c.srv.wake(c.token)
}

// drainQueue translates every queued clientbound packet, then flushes the
// send queue to the client. Runs under the lock.
func (c *Conn) drainQueue() {
	for {
		select {
		case p := <-c.cbQueue:
			c.writeCB(p)
			if c.closed {
				return
			}
		default:
			c.flushSendQueue()
			return
		}
	}
}

func (c *Conn) flushSendQueue() {
	for c.sendQueue.Len() > 0 {
		c.client.WritePacket(c.sendQueue.PopFront())
	}
	if err := c.client.Flush(); err != nil {
		c.log.Debug("client flush failed", zap.Error(err))
		c.teardown()
	}
}

func (c *Conn) writeCB(p canon.CB) {
	if sw, ok := p.(*canon.SwitchServer); ok {
		c.switchServer(sw.Addrs)
		return
	}
	packets, err := codec.ToTCP(p, c.ver, c.srv.conv)
	if err != nil {
		c.srv.metrics.PacketsDropped.Inc()
		c.log.Warn("cannot translate packet", zap.Error(err))
		return
	}
	if packets == nil {
		c.srv.metrics.PacketsDropped.Inc()
		return
	}
	for _, out := range packets {
		c.srv.metrics.PacketsClientbound.Inc()
		c.sendQueue.PushBack(out)
	}
}

// switchServer moves the connection to another backend, falling back to the
// current one when every candidate fails.
func (c *Conn) switchServer(addrs []string) {
	for _, addr := range addrs {
		sock, err := c.srv.transport.dial(addr)
		if err != nil {
			c.log.Warn("switch target unreachable", zap.String("addr", addr), zap.Error(err))
			continue
		}
		w := transfer.NewWriter(nil)
		canon.WriteJoin(w, canon.Join{
			Mode:     canon.JoinSwitch,
			Username: c.username,
			UUID:     c.info.ID,
			Ver:      c.ver.ID(),
		})
		if _, err := sock.Write(transfer.AppendFrame(nil, w.Bytes())); err != nil {
			c.log.Warn("switch join failed", zap.String("addr", addr), zap.Error(err))
			sock.Close()
			continue
		}
		// Only now swap links; a failed candidate leaves the current
		// backend untouched.
		old := c.backendSock
		c.backendSock = sock
		c.fromBackend = nil
		c.toBackend = nil
		if old != nil {
			old.Close()
		}
		c.log.Info("switched backend", zap.String("addr", addr))
		c.srv.startBackendReader(c, sock)
		return
	}
	c.log.Warn("no switch target reachable; staying on current backend")
}

// disconnect writes a kick in the state's format, flushes, and closes.
func (c *Conn) disconnect(reason canon.Text) {
	p := codec.Disconnect(reason, c.ver, c.state == StatePlay)
	c.client.WritePacket(p)
	if err := c.client.Flush(); err != nil {
		c.log.Debug("disconnect flush failed", zap.Error(err))
	}
	c.teardown()
}

// teardown releases everything the connection owns. Safe to call twice.
func (c *Conn) teardown() {
	if c.closed {
		return
	}
	c.closed = true
	if c.inPlay {
		c.srv.online.Dec()
	}
	c.clientSock.Close()
	if c.backendSock != nil {
		c.backendSock.Close()
	}
	c.srv.remove(c.token)
}
