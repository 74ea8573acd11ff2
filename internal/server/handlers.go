package server

import (
	"context"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/cheatcompare/internal/selection"
	"github.com/ziadkadry99/cheatcompare/internal/session"
	"github.com/ziadkadry99/cheatcompare/internal/view"
)

const sessionCookie = "cc_session"

var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// sessionID returns the request's session id, if it carries a valid one.
func sessionID(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookie)
	if err != nil || !session.ValidID(c.Value) {
		return "", false
	}
	return c.Value, true
}

func newSessionCookie(id string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// viewFor returns the caller's view, issuing a session cookie if needed.
func (s *Server) viewFor(w http.ResponseWriter, r *http.Request) *view.View {
	id, ok := sessionID(r)
	if !ok {
		id = session.NewID()
		http.SetCookie(w, newSessionCookie(id))
	}
	return s.sessions.Get(id)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	v := s.viewFor(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, v.Snapshot()); err != nil {
		log.Printf("server: rendering page: %v", err)
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	v := s.viewFor(w, r)
	writeJSON(w, http.StatusOK, v.Snapshot())
}

// selectRequest is the body of POST /api/selection/{slot}.
type selectRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	slot, err := selection.ParseSlot(chi.URLParam(r, "slot"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req selectRequest
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid form body")
			return
		}
		req.Name = r.PostForm.Get("name")
	}

	v := s.viewFor(w, r)
	if err := v.Select(slot, req.Name); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if r.URL.Query().Get("wait") == "true" {
		waitLoaded(r.Context(), v)
	}
	writeJSON(w, http.StatusOK, v.Snapshot())
}

// waitLoaded blocks until v has no retrieval in flight or ctx ends.
func waitLoaded(ctx context.Context, v *view.View) {
	done := make(chan struct{})
	go func() {
		v.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
	}
}

func serveAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
