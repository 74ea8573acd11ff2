package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ziadkadry99/cheatcompare/internal/view"
)

// DefaultTTL is how long an unused session's view is kept.
const DefaultTTL = time.Hour

// Factory builds the comparison view for a new session.
type Factory func(id string) *view.View

type entry struct {
	view     *view.View
	lastSeen time.Time
	attached int
}

// Manager holds one comparison view per browser session, in memory only.
type Manager struct {
	mu      sync.Mutex
	views   map[string]*entry
	factory Factory
	ttl     time.Duration
	now     func() time.Time
}

// NewManager creates a Manager. ttl <= 0 uses DefaultTTL.
func NewManager(factory Factory, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		views:   make(map[string]*entry),
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
	}
}

// NewID returns a fresh session id.
func NewID() string { return uuid.New().String() }

// ValidID reports whether id looks like a session id issued by NewID.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Get returns the view for id, creating it on first use.
func (m *Manager) Get(id string) *view.View {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.views[id]
	if !ok {
		e = &entry{view: m.factory(id)}
		m.views[id] = e
	}
	e.lastSeen = m.now()
	return e.view
}

// Attach returns the view for id like Get and keeps it from being swept
// until release is called. Long-lived connections hold a view this way.
func (m *Manager) Attach(id string) (v *view.View, release func()) {
	m.mu.Lock()
	e, ok := m.views[id]
	if !ok {
		e = &entry{view: m.factory(id)}
		m.views[id] = e
	}
	e.attached++
	e.lastSeen = m.now()
	m.mu.Unlock()

	var once sync.Once
	return e.view, func() {
		once.Do(func() {
			m.mu.Lock()
			e.attached--
			e.lastSeen = m.now()
			m.mu.Unlock()
		})
	}
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.views)
}

// Sweep closes and drops views idle for longer than the TTL. Attached views
// are never swept. It returns the number removed.
func (m *Manager) Sweep() int {
	m.mu.Lock()
	cutoff := m.now().Add(-m.ttl)
	var stale []*view.View
	for id, e := range m.views {
		if e.attached == 0 && e.lastSeen.Before(cutoff) {
			stale = append(stale, e.view)
			delete(m.views, id)
		}
	}
	m.mu.Unlock()

	for _, v := range stale {
		v.Close()
	}
	return len(stale)
}

// Run sweeps every interval until done is closed.
func (m *Manager) Run(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			m.Sweep()
		case <-done:
			return
		}
	}
}

// Close closes every view.
func (m *Manager) Close() {
	m.mu.Lock()
	views := m.views
	m.views = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range views {
		e.view.Close()
	}
}
