package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/limbo/devhabit/internal/metrics"
	"github.com/limbo/devhabit/internal/migrations"
	"github.com/limbo/devhabit/internal/service"
)

const defaultRequestTimeout = 15 * time.Second

type Server struct {
	mx             *chi.Mux
	httpServer     *http.Server
	habitsService  service.HabitsServiceI
	requestTimeout time.Duration
	// Set once startup work (migrations) is done
	ready atomic.Bool
}

type ServicesList struct {
	HabitsService service.HabitsServiceI
}

type Option func(*Server)

// WithRequestTimeout bounds the store work of a single request.
func WithRequestTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.requestTimeout = d
		}
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:             chi.NewMux(),
		habitsService:  servicesOptions.HabitsService,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	s.httpServer = &http.Server{
		Handler:      s.mx,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: s.requestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.mx.Use(
		middleware.Recoverer,
		s.RequestIDMiddleware,
		s.SettingUpLoggerMiddleware,
		s.RequestLoggingMiddleware,
		metrics.InstrumentHandler,
	)
	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", metrics.Handler())
	s.mx.Route("/api/habits", func(r chi.Router) {
		r.Get("/", s.GetHabits)
		r.Get("/{id}", s.GetHabit)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// MarkReady flips /health to report ready. Call it after migrations are applied.
func (s *Server) MarkReady() {
	s.ready.Store(true)
}

func (s *Server) IsReady() bool {
	return s.ready.Load()
}

// Start applies pending migrations and marks the server ready. On failure the
// server stays not ready and the error is returned.
func (s *Server) Start(ctx context.Context, m migrations.Migrator, logger *slog.Logger) error {
	if err := migrations.Apply(ctx, m, logger); err != nil {
		return err
	}
	s.MarkReady()
	return nil
}

// Run blocks serving on address until Shutdown is called or listening fails.
// Run after Shutdown returns nil without listening.
func (s *Server) Run(address string) error {
	s.httpServer.Addr = address
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.ready.Store(false)
	return s.httpServer.Shutdown(ctx)
}
