package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/cheatcompare/internal/diag"
	"github.com/ziadkadry99/cheatcompare/internal/session"
)

// Config holds server configuration.
type Config struct {
	Port     int
	BasePath string // URL path the document store is mounted at
	DocsDir  string // local directory served at BasePath; empty disables
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server serves the comparison page, its API and the document store.
type Server struct {
	cfg        Config
	sessions   *session.Manager
	journal    *diag.Store
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. journal may be nil to disable /api/diagnostics.
func New(cfg Config, sessions *session.Manager, journal *diag.Store) *Server {
	s := &Server{
		cfg:      cfg,
		sessions: sessions,
		journal:  journal,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Get("/assets/style.css", serveAsset("text/css; charset=utf-8", cssContent))
	r.Get("/assets/app.js", serveAsset("application/javascript; charset=utf-8", jsContent))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))
		r.Get("/state", s.handleState)
		r.Post("/selection/{slot}", s.handleSelect)
	})
	r.Get("/ws", s.handleWS)

	if s.journal != nil {
		diag.RegisterRoutes(r, s.journal)
	}

	if s.cfg.DocsDir != "" && strings.HasPrefix(s.cfg.BasePath, "/") {
		base := strings.TrimRight(s.cfg.BasePath, "/")
		docs := http.StripPrefix(base, http.FileServer(http.Dir(s.cfg.DocsDir)))
		r.Handle(base+"/*", docs)
	}

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	log.Printf("cheatcompare server listening on %s", ln.Addr())
	return s.httpServer.Serve(ln)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
