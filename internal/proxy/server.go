package proxy

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"runtime"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"gatewire/internal/canon"
	"gatewire/internal/config"
	"gatewire/internal/convert"
	"gatewire/internal/metrics"
)

// Fixed dispatcher tokens; connection tokens count up from the first free
// value.
const (
	tokenListen uint32 = 0
	tokenWake   uint32 = 1
	tokenFirst  uint32 = 2
)

type eventKind int

const (
	evClientData eventKind = iota
	evClientClosed
	evBackendData
	evBackendClosed
	evWake
)

// event is one unit of readiness work for a connection. done is closed when
// a worker finishes it, which is how the producing reader preserves
// per-direction ordering.
type event struct {
	token uint32
	kind  eventKind
	data  []byte
	done  chan struct{}
}

// Server owns the listener, the dispatcher, and every live connection.
type Server struct {
	cfg  *config.Config
	log  *zap.Logger
	conv *convert.Converter

	// key is always present; derKey is nil in offline mode, which is what
	// turns encryption off.
	key    *rsa.PrivateKey
	derKey []byte

	transport *backendTransport
	metrics   *metrics.Set

	listener net.Listener
	events   chan *event

	connsMu   sync.Mutex
	conns     map[uint32]*Conn
	nextToken *atomic.Uint32
	online    *atomic.Int32
}

// NewServer builds a server. An RSA key pair is always generated; its DER
// public key is kept only when online mode is enabled.
func NewServer(cfg *config.Config, log *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		log:       log,
		conv:      convert.New(),
		transport: newBackendTransport(cfg),
		metrics:   metrics.New(),
		events:    make(chan *event, 1024),
		nextToken: atomic.NewUint32(tokenFirst),
		online:    atomic.NewInt32(0),
	}
	s.conns = make(map[uint32]*Conn)

	key, err := rsa.GenerateKey(rand.Reader, 1024)
	if err != nil {
		return nil, fmt.Errorf("rsa keygen: %w", err)
	}
	s.key = key
	if cfg.OnlineMode {
		der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
		if err != nil {
			return nil, fmt.Errorf("der encode: %w", err)
		}
		s.derKey = der
	}
	return s, nil
}

// OnlineCount returns the number of connections in Play state.
func (s *Server) OnlineCount() int { return int(s.online.Load()) }

func (s *Server) register(c *Conn) {
	s.connsMu.Lock()
	s.conns[c.token] = c
	s.connsMu.Unlock()
	s.metrics.ActiveConns.Inc()
}

func (s *Server) lookup(token uint32) *Conn {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	return s.conns[token]
}

func (s *Server) remove(token uint32) {
	s.connsMu.Lock()
	if _, ok := s.conns[token]; ok {
		delete(s.conns, token)
		s.metrics.ActiveConns.Dec()
	}
	s.connsMu.Unlock()
}

// Run listens and serves until the listener is closed. Worker count follows
// the CPU count; all I/O waits happen on reader goroutines, never on
// workers.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.cfg.Listen)
	if err != nil {
		return err
	}
	s.listener = ln
	s.log.Info("listening", zap.String("addr", s.cfg.Listen),
		zap.Bool("online_mode", s.cfg.OnlineMode),
		zap.Int32("compression", s.cfg.CompressionThreshold))

	if s.cfg.MetricsListen != "" {
		go func() {
			if err := s.metrics.Serve(s.cfg.MetricsListen); err != nil {
				s.log.Warn("metrics server stopped", zap.Error(err))
			}
		}()
	}

	workers := runtime.NumCPU()
	for i := 0; i < workers; i++ {
		go s.worker()
	}

	for {
		sock, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.log.Warn("accept failed", zap.Error(err))
			continue
		}
		token := s.nextToken.Inc() - 1
		c := newConn(s, sock, token)
		s.register(c)
		go s.clientReader(c, sock)
	}
}

// Shutdown closes the listener; in-flight connections drain naturally.
func (s *Server) Shutdown() {
	if s.listener != nil {
		s.listener.Close()
	}
	s.transport.close()
}

// post hands an event to the worker pool and waits for completion, which
// keeps events from one socket strictly ordered.
func (s *Server) post(ev *event) {
	ev.done = make(chan struct{})
	s.events <- ev
	<-ev.done
}

// wake signals that clientbound packets are queued for the token. Unlike
// data events it does not wait: the producer may itself be a worker, so the
// send must never block.
func (s *Server) wake(token uint32) {
	ev := &event{token: token, kind: evWake}
	select {
	case s.events <- ev:
	default:
		go func() { s.events <- ev }()
	}
}

func (s *Server) worker() {
	for ev := range s.events {
		s.handleEvent(ev)
	}
}

func (s *Server) handleEvent(ev *event) {
	if ev.done != nil {
		defer close(ev.done)
	}
	c := s.lookup(ev.token)
	if c == nil {
		return
	}
	if ev.kind == evWake {
		// Contended locks retry on a later tick; whoever holds the lock now
		// may drain the queue anyway.
		if c.mu.TryLock() {
			c.drainQueue()
			c.mu.Unlock()
		} else {
			s.wakeLater(ev.token)
		}
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch ev.kind {
	case evClientData:
		c.handleClientData(ev.data)
	case evClientClosed:
		c.teardown()
	case evBackendData:
		c.handleBackendData(ev.data)
	case evBackendClosed:
		if c.state == StatePlay {
			c.disconnect(canon.Text{Text: "Server closed the connection"})
		} else {
			c.teardown()
		}
	}
}

func (s *Server) wakeLater(token uint32) {
	go func() {
		time.Sleep(time.Millisecond)
		s.wake(token)
	}()
}

// clientReader blocks on the client socket and posts data to the worker
// pool. This goroutine is the only reader of the socket.
func (s *Server) clientReader(c *Conn, sock net.Conn) {
	buf := make([]byte, 64*1024)
	for {
		n, err := sock.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			s.post(&event{token: c.token, kind: evClientData, data: data})
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				s.log.Debug("client read failed", zap.Error(err))
			}
			s.post(&event{token: c.token, kind: evClientClosed})
			return
		}
	}
}

// startBackendReader spawns the reader goroutine for a freshly opened
// backend link.
func (s *Server) startBackendReader(c *Conn, sock net.Conn) {
	go func() {
		buf := make([]byte, 64*1024)
		for {
			n, err := sock.Read(buf)
			if n > 0 {
				data := make([]byte, n)
				copy(data, buf[:n])
				s.post(&event{token: c.token, kind: evBackendData, data: data})
			}
			if err != nil {
				// A replaced socket (server switch) ends here quietly.
				c.mu.Lock()
				current := c.backendSock == sock
				c.mu.Unlock()
				if current {
					s.post(&event{token: c.token, kind: evBackendClosed})
				}
				return
			}
		}
	}()
}
