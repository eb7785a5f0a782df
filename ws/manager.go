package ws

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

// session wraps a live connection with a write mutex. gorilla/websocket
// allows only one concurrent writer per connection, so every write goes
// through the session lock.
type session struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Manager keeps track of active library-feed websocket connections.
// One connection per account; a new tab replaces the old session.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*session // accountID -> live session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*session)}
}

// Register registers an account connection, replacing any existing one.
func (m *Manager) Register(accountID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sessions[accountID]; ok && old.conn != conn {
		// close old connection to avoid leaks
		_ = old.conn.Close()
	}
	m.sessions[accountID] = &session{conn: conn}
}

// Unregister removes an account connection. The conn argument must be
// the caller's own connection: a session replaced by Register stays
// registered when the superseded read loop unregisters on exit.
func (m *Manager) Unregister(accountID string, conn *websocket.Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[accountID]; ok && s.conn == conn {
		_ = s.conn.Close()
		delete(m.sessions, accountID)
	}
}

// Send delivers a text message to an account's live session if any.
// All writes to a connection are funneled through here so the read
// loop and request handlers never write concurrently.
func (m *Manager) Send(accountID string, payload []byte) error {
	m.mu.RLock()
	s, ok := m.sessions[accountID]
	m.mu.RUnlock()
	if !ok {
		return errors.New("account not connected")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteMessage(websocket.TextMessage, payload)
}

// IsConnected returns whether an account has a live session.
func (m *Manager) IsConnected(accountID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[accountID]
	return ok
}

// List returns a copy of currently connected account IDs.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids
}
