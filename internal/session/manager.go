package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Manager owns every live session. Sessions idle for longer than the idle
// timeout are dropped by Sweep.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*Session
	clock       quartz.Clock
	idleTimeout time.Duration
	onExpire    func(ids []string)
	logger      *log.Logger
}

// NewManager creates a session manager. A zero idleTimeout disables expiry.
func NewManager(logger *log.Logger, clock quartz.Clock, idleTimeout time.Duration) *Manager {
	return &Manager{
		sessions:    make(map[string]*Session),
		clock:       clock,
		idleTimeout: idleTimeout,
		logger:      logger.WithPrefix("sessions"),
	}
}

// Create starts a new session for players and returns its snapshot
func (m *Manager) Create(players []string, target float64) Snapshot {
	s := New(uuid.NewString(), players)
	if target > 0 {
		s.Target = target
	}
	s.UpdatedAt = m.clock.Now()

	m.mu.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.logger.Debug("Created session", "id", s.ID, "players", len(s.Players), "total", count)
	return s.Snapshot()
}

// Get returns the snapshot of session id
func (m *Manager) Get(id string) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	return s.Snapshot(), nil
}

// Update applies fn to session id under the manager lock. The session is
// only touched if fn succeeds.
func (m *Manager) Update(id string, fn func(*Session) error) (Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return Snapshot{}, ErrSessionNotFound
	}
	if err := fn(s); err != nil {
		return s.Snapshot(), err
	}
	s.UpdatedAt = m.clock.Now()
	return s.Snapshot(), nil
}

// Delete removes session id
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// OnExpire registers fn to be called with the ids dropped by each sweep Run performs
func (m *Manager) OnExpire(fn func(ids []string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onExpire = fn
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops idle sessions and returns their ids
func (m *Manager) Sweep() []string {
	if m.idleTimeout <= 0 {
		return nil
	}

	now := m.clock.Now()
	m.mu.Lock()
	defer m.mu.Unlock()

	var expired []string
	for id, s := range m.sessions {
		if now.Sub(s.UpdatedAt) >= m.idleTimeout {
			delete(m.sessions, id)
			expired = append(expired, id)
		}
	}
	if len(expired) > 0 {
		m.logger.Info("Expired idle sessions", "count", len(expired), "remaining", len(m.sessions))
	}
	return expired
}

// Run sweeps idle sessions every interval until ctx is cancelled
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if m.idleTimeout <= 0 || interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := m.clock.NewTicker(interval, "sessions", "sweep")
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			expired := m.Sweep()
			m.mu.Lock()
			fn := m.onExpire
			m.mu.Unlock()
			if fn != nil && len(expired) > 0 {
				fn(expired)
			}
		}
	}
}
