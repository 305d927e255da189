package wizard

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/simaogato/kirimuang-backend/internal/domain"
	"github.com/simaogato/kirimuang-backend/internal/observability"
	"github.com/simaogato/kirimuang-backend/internal/usecase/navigation"
)

// Manager keeps the open wizard sessions, one draft each
type Manager struct {
	deps Deps

	mu       sync.RWMutex
	sessions map[string]*Wizard
}

func NewManager(deps Deps) *Manager {
	return &Manager{
		deps:     deps,
		sessions: make(map[string]*Wizard),
	}
}

// Start opens a session with its own navigation stack rooted at the dashboard
func (m *Manager) Start(ctx context.Context, lang domain.Language) (*Wizard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	w := New(id.String(), lang, navigation.NewRouter(domain.RouteDashboard), m.deps)

	m.mu.Lock()
	m.sessions[w.ID()] = w
	active := len(m.sessions)
	m.mu.Unlock()

	observability.ActiveSessions.Set(float64(active))
	m.deps.Logger.Info().Str("session_id", w.ID()).Str("language", string(lang)).Msg("wizard session started")
	return w, nil
}

// Get returns an open session
func (m *Manager) Get(id string) (*Wizard, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return w, nil
}

// End closes and forgets a session
func (m *Manager) End(id string) error {
	m.mu.Lock()
	w, ok := m.sessions[id]
	delete(m.sessions, id)
	active := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return domain.ErrSessionNotFound
	}
	w.Close()
	observability.ActiveSessions.Set(float64(active))
	return nil
}

// CloseAll ends every session, used on shutdown
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*Wizard)
	m.mu.Unlock()

	for _, w := range sessions {
		w.Close()
	}
	observability.ActiveSessions.Set(0)
}
