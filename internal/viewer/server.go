package viewer

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/devlog-hub/internal/content"
	"github.com/ziadkadry99/devlog-hub/internal/theme"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool // allow all CORS origins (dev mode)
}

// Server renders module documents fetched from the remote source. Each
// request performs its own fetch; nothing is cached between navigations.
type Server struct {
	cfg        Config
	fetcher    *content.Fetcher
	theme      *theme.Manager
	renderer   *Renderer
	moduleTmpl *template.Template
	errorTmpl  *template.Template
	indexTmpl  *template.Template
	router     chi.Router
	httpServer *http.Server
}

// New creates a Server with all dependencies wired.
func New(cfg Config, fetcher *content.Fetcher, themes *theme.Manager) (*Server, error) {
	moduleTmpl, err := template.New("module").Parse(modulePageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing module template: %w", err)
	}
	errorTmpl, err := template.New("error").Parse(errorPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing error template: %w", err)
	}
	indexTmpl, err := template.New("index").Parse(indexPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing index template: %w", err)
	}

	s := &Server{
		cfg:        cfg,
		fetcher:    fetcher,
		theme:      themes,
		renderer:   NewRenderer(),
		moduleTmpl: moduleTmpl,
		errorTmpl:  errorTmpl,
		indexTmpl:  indexTmpl,
	}
	s.router = s.buildRouter()
	return s, nil
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

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

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", s.handleIndex)
	r.Get("/style.css", s.handleCSS)
	r.Get("/modules/{id}", s.handleModule)
	r.Post("/theme/toggle", s.handleThemeToggle)

	r.Get("/api/modules", s.handleListModules)
	r.Get("/api/modules/{id}", s.handleGetModule)

	return r
}

// Router returns the chi router, mainly for tests.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("devlog viewer listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
