package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/cheatcompare/internal/selection"
	"github.com/ziadkadry99/cheatcompare/internal/session"
	"github.com/ziadkadry99/cheatcompare/internal/view"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsMessage is the envelope for both directions of /ws.
//
// Server to client: "state" carries a full snapshot, "pane" one slot's new
// pane, "error" a message. Client to server: "select" with slot and name.
type wsMessage struct {
	Type    string      `json:"type"`
	State   *view.State `json:"state,omitempty"`
	Pane    *view.Pane  `json:"pane,omitempty"`
	Slot    string      `json:"slot,omitempty"`
	Name    string      `json:"name,omitempty"`
	Message string      `json:"message,omitempty"`
}

// paneQueue keeps only the newest pending pane per slot, so a slow client
// never blocks a loader and always ends on the latest state.
type paneQueue struct {
	mu      sync.Mutex
	pending map[selection.Slot]view.Pane
	signal  chan struct{}
}

func newPaneQueue() *paneQueue {
	return &paneQueue{
		pending: make(map[selection.Slot]view.Pane),
		signal:  make(chan struct{}, 1),
	}
}

func (q *paneQueue) push(p view.Pane) {
	q.mu.Lock()
	q.pending[p.Slot] = p
	q.mu.Unlock()
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *paneQueue) drain() []view.Pane {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]view.Pane, 0, len(q.pending))
	for _, slot := range selection.Slots {
		if p, ok := q.pending[slot]; ok {
			out = append(out, p)
			delete(q.pending, slot)
		}
	}
	return out
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	var header http.Header
	id, ok := sessionID(r)
	if !ok {
		id = session.NewID()
		header = http.Header{}
		header.Add("Set-Cookie", newSessionCookie(id).String())
	}
	v, release := s.sessions.Attach(id)
	defer release()

	conn, err := upgrader.Upgrade(w, r, header)
	if err != nil {
		log.Printf("server: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	// gorilla/websocket forbids concurrent writes.
	var writeMu sync.Mutex
	writeMsg := func(msg wsMessage) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(msg)
	}

	queue := newPaneQueue()
	cancel := v.Subscribe(queue.push)
	defer cancel()

	state := v.Snapshot()
	if err := writeMsg(wsMessage{Type: "state", State: &state}); err != nil {
		return
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-queue.signal:
				for _, p := range queue.drain() {
					if err := writeMsg(wsMessage{Type: "pane", Pane: &p}); err != nil {
						conn.Close()
						return
					}
				}
			case <-done:
				return
			}
		}
	}()

	for {
		var msg wsMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("server: websocket read: %v", err)
			}
			return
		}

		switch msg.Type {
		case "select":
			slot, err := selection.ParseSlot(msg.Slot)
			if err != nil {
				writeMsg(wsMessage{Type: "error", Message: err.Error()}) //nolint:errcheck
				continue
			}
			if err := v.Select(slot, msg.Name); err != nil {
				writeMsg(wsMessage{Type: "error", Message: err.Error()}) //nolint:errcheck
			}
		default:
			writeMsg(wsMessage{Type: "error", Message: "unknown message type " + msg.Type}) //nolint:errcheck
		}
	}
}
