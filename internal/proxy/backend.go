package proxy

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/hashicorp/yamux"

	"gatewire/internal/config"
)

// dialTimeout bounds a backend connect attempt.
const dialTimeout = 5 * time.Second

// backendTransport opens one stream per client connection to the backend:
// either a dedicated TCP socket, or a yamux stream over a shared session.
type backendTransport struct {
	cfg *config.Config

	mu      sync.Mutex
	session *yamux.Session
}

func newBackendTransport(cfg *config.Config) *backendTransport {
	return &backendTransport{cfg: cfg}
}

// dial opens a backend stream to addr. In mux mode only the configured
// backend is multiplexed; switch-server targets get a direct socket.
func (t *backendTransport) dial(addr string) (net.Conn, error) {
	if t.cfg.BackendTransport == "mux" && addr == t.cfg.Backend {
		return t.openStream()
	}
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return nil, fmt.Errorf("backend %s: %w", addr, err)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
	}
	return conn, nil
}

func (t *backendTransport) openStream() (net.Conn, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session == nil || t.session.IsClosed() {
		conn, err := net.DialTimeout("tcp", t.cfg.Backend, dialTimeout)
		if err != nil {
			return nil, fmt.Errorf("backend %s: %w", t.cfg.Backend, err)
		}
		session, err := yamux.Client(conn, nil)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("backend mux: %w", err)
		}
		t.session = session
	}
	stream, err := t.session.OpenStream()
	if err != nil {
		// The session died under us; drop it so the next dial reconnects.
		t.session.Close()
		t.session = nil
		return nil, fmt.Errorf("backend mux stream: %w", err)
	}
	return stream, nil
}

func (t *backendTransport) close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.session != nil {
		t.session.Close()
		t.session = nil
	}
}
