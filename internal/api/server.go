package api

import (
	"log/slog"
	"net/http"

	"github.com/dbenedek/docnav/internal/config"
	"github.com/dbenedek/docnav/internal/watch"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for docnav.
type Server struct {
	router chi.Router
	store  *watch.Store
	loader watch.Loader
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(store *watch.Store, loader watch.Loader, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store:  store,
		loader: loader,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Read-only endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/api/nav", s.handleNav)
	r.Get("/api/nav/groups", s.handleNavGroups)
	r.Get("/api/pages/*", s.handleResolve)
	r.Get("/api/check", s.handleCheck)

	// Mutating endpoints, only available when a key is configured.
	if s.cfg.APIKey != "" {
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
			r.Post("/api/reload", s.handleReload)
		})
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
