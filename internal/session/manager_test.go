package session

import (
	"context"
	"testing"
	"time"

	"github.com/ziadkadry99/cheatcompare/internal/selection"
	"github.com/ziadkadry99/cheatcompare/internal/view"
)

type staticFetcher map[string]string

func (f staticFetcher) Fetch(ctx context.Context, address string) (string, error) {
	return f[address], nil
}

func newTestManager(t *testing.T) (*Manager, *[]string) {
	t.Helper()
	var created []string
	m := NewManager(func(id string) *view.View {
		created = append(created, id)
		return view.New(view.Options{
			Documents: []string{"C++", "Go", "Python"},
			BasePath:  "/CheatSheet",
			Fetcher:   staticFetcher{"/CheatSheet/C++.md": "# C++", "/CheatSheet/Go.md": "# Go"},
		})
	}, time.Minute)
	t.Cleanup(m.Close)
	return m, &created
}

func TestGetCreatesOncePerID(t *testing.T) {
	m, created := newTestManager(t)

	a := m.Get("a")
	if m.Get("a") != a {
		t.Error("Get returned a different view for the same id")
	}
	b := m.Get("b")
	if a == b {
		t.Error("different sessions share a view")
	}
	if len(*created) != 2 || m.Len() != 2 {
		t.Errorf("created = %v, Len = %d", *created, m.Len())
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	m, _ := newTestManager(t)
	a, b := m.Get("a"), m.Get("b")

	a.Select(selection.Left, "Python")
	a.Wait()
	b.Wait()

	if got := b.Selection()[selection.Left]; got != "C++" {
		t.Errorf("session b left = %q, want C++", got)
	}
}

func (m *Manager) has(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.views[id]
	return ok
}

func TestAttachedViewIsNotSwept(t *testing.T) {
	m, _ := newTestManager(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	v, release := m.Attach("ws")
	now = now.Add(2 * time.Minute)
	if n := m.Sweep(); n != 0 {
		t.Fatalf("Sweep removed %d attached sessions", n)
	}
	if m.Get("ws") != v {
		t.Error("attached session was replaced")
	}

	release()
	release()
	now = now.Add(2 * time.Minute)
	if n := m.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d after release, want 1", n)
	}
}

func TestAttachedViewStillLoads(t *testing.T) {
	m, _ := newTestManager(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	v, release := m.Attach("ws")
	defer release()
	now = now.Add(time.Hour)
	m.Sweep()

	if err := v.Select(selection.Right, "C++"); err != nil {
		t.Fatalf("Select: %v", err)
	}
	v.Wait()
	if p := v.Pane(selection.Right); p.Placeholder || p.State != "loaded" {
		t.Errorf("right pane = %+v, want loaded C++", p)
	}
}

func TestSweep(t *testing.T) {
	m, _ := newTestManager(t)
	now := time.Now()
	m.now = func() time.Time { return now }

	m.Get("old")
	now = now.Add(2 * time.Minute)
	m.Get("fresh")

	if n := m.Sweep(); n != 1 {
		t.Errorf("Sweep removed %d, want 1", n)
	}
	if m.has("old") {
		t.Error("stale session survived sweep")
	}
	if !m.has("fresh") {
		t.Error("fresh session was swept")
	}
}

func TestValidID(t *testing.T) {
	if !ValidID(NewID()) {
		t.Error("NewID produced an invalid id")
	}
	if ValidID("not-a-uuid") {
		t.Error("ValidID accepted garbage")
	}
}
