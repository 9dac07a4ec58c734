package showcase

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"zielinski.dev/folio-web/internal/config"
)

// sessionIdleTTL bounds how long an idle visitor keeps a controller alive.
const sessionIdleTTL = 30 * time.Minute

// Manager hands out one Controller per visitor session. Controllers for
// idle sessions are pruned opportunistically on access.
type Manager struct {
	mu       sync.Mutex
	log      *zap.Logger
	settings config.Settings
	entries  map[string]*managerEntry
}

type managerEntry struct {
	ctrl     *Controller
	lastSeen time.Time
}

func NewManager(settings config.Settings, log *zap.Logger) *Manager {
	return &Manager{
		log:      log,
		settings: settings,
		entries:  map[string]*managerEntry{},
	}
}

// For returns the controller for a session id, creating one on first use.
func (m *Manager) For(sessionID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	m.pruneLocked(now)
	e, ok := m.entries[sessionID]
	if !ok {
		e = &managerEntry{ctrl: NewController(m.settings, m.log)}
		m.entries[sessionID] = e
	}
	e.lastSeen = now
	return e.ctrl
}

func (m *Manager) pruneLocked(now time.Time) {
	for id, e := range m.entries {
		if now.Sub(e.lastSeen) > sessionIdleTTL {
			delete(m.entries, id)
		}
	}
}
