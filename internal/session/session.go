package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session maps an opaque identifier to the signed-in user. Records live
// only in process memory and are lost on restart.
type Session struct {
	UserID    uint
	Username  string
	CreatedAt time.Time
}

// Manager owns the in-memory session registry. The map is guarded by a
// single lock since net/http dispatches handlers concurrently.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]Session),
	}
}

// Create issues a fresh random identifier for the user. Identifiers are
// uuid v4 and carry no information derived from other sessions.
func (m *Manager) Create(userID uint, username string) string {
	id := uuid.NewString()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[id] = Session{
		UserID:    userID,
		Username:  username,
		CreatedAt: time.Now(),
	}

	return id
}

func (m *Manager) Get(sessionID string) (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	return s, ok
}

// Delete is idempotent: removing an absent session is a no-op.
func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
}

func (m *Manager) IsAuthenticated(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.sessions[sessionID]
	return ok
}
