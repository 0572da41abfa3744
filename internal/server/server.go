// Package server wires the HTTP surface of the quote simulator: question
// catalog, quote computation, lead submission and wizard session storage.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"quote-simulator/internal/common/config"
	"quote-simulator/internal/common/logger"
	"quote-simulator/internal/leads"
	"quote-simulator/internal/pricing"
	"quote-simulator/internal/wizard"
)

// preflightMaxAge is how long browsers may cache CORS preflight responses.
// The wizard runs in an iframe on an external site, so preflights are hot.
const preflightMaxAge = 86400

// shutdownGrace bounds how long in-flight requests may run during shutdown.
const shutdownGrace = 15 * time.Second

// Dependencies groups everything the HTTP handlers need.
type Dependencies struct {
	Engine   *pricing.Engine
	Leads    *leads.Service
	Sessions *wizard.Store
	Log      logger.Logger
}

// NewRouter builds the chi router with middleware and all routes mounted.
func NewRouter(deps Dependencies, cfg config.ServerConfig) chi.Router {
	h := &handlers{
		engine:   deps.Engine,
		leads:    deps.Leads,
		sessions: deps.Sessions,
		log:      deps.Log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(config.GetDuration(cfg.RequestTimeout)))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         preflightMaxAge,
	}))

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/questions", h.questions)
		r.Post("/quote", h.quote)
		r.Post("/quote/lots", h.quoteLots)
		r.Post("/leads", h.submitLead)

		r.Route("/wizard/sessions", func(r chi.Router) {
			r.Post("/", h.createSession)
			r.Put("/{id}", h.saveSession)
			r.Get("/{id}", h.getSession)
		})
	})

	return r
}

// Server wraps the HTTP server with graceful shutdown.
type Server struct {
	httpServer *http.Server
	log        logger.Logger
}

func New(cfg config.ServerConfig, handler http.Handler, log logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      handler,
			ReadTimeout:  config.GetDuration(cfg.ReadTimeout),
			WriteTimeout: config.GetDuration(cfg.WriteTimeout),
		},
		log: log,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", map[string]interface{}{
			"address": s.httpServer.Addr,
		})
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("http server shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.httpServer.Shutdown(shutdownCtx)
}
