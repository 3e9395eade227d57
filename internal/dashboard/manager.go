package dashboard

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vkuzmenko/weather-dashboard/internal/weather"
)

// Manager keeps the live sessions, each under its own id, so independent
// dashboards never share location or unit state.
type Manager struct {
	provider weather.Provider
	locator  weather.Locator
	zone     *time.Location

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(provider weather.Provider, locator weather.Locator, zone *time.Location) *Manager {
	return &Manager{
		provider: provider,
		locator:  locator,
		zone:     zone,
		sessions: make(map[string]*Session),
	}
}

// Create registers a new session and returns its id.
func (m *Manager) Create() (string, *Session) {
	id := uuid.NewString()
	s := NewSession(m.provider, m.locator, m.zone)

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	return id, s
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// Remove drops a session; it also leaves the auto-refresh set.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	return true
}

// Sessions returns the live sessions for the refresh job.
func (m *Manager) Sessions() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, s)
	}
	return out
}
