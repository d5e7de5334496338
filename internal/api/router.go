package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"sportapp/internal/api/handlers/http/incidents"
	"sportapp/internal/api/handlers/http/sessions"
	"sportapp/internal/api/handlers/http/system"
	"sportapp/internal/config"
	"sportapp/internal/middleware"
)

const (
	SessionsServiceName = "Sport Sessions Service"
	ProviderServiceName = "Adverse Incidents Provider Service"
	NotifierServiceName = "Alerts Service"
)

type Server struct {
	logger *slog.Logger
	router http.Handler
	cfg    config.HttpConfig
}

func NewSessionsServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc sessions.SportSessions) *Server {
	r := InitSessionsRouter(ctx, cfg.Sessions.APIKey, sessions.NewHandler(logger, svc), logger)
	return &Server{logger: logger, router: r, cfg: cfg.Http}
}

func NewProviderServer(cfg *config.Config, logger *slog.Logger, gen incidents.IncidentGenerator) *Server {
	r := InitProviderRouter(cfg.Provider.APIKey, incidents.NewHandler(logger, gen), logger)
	return &Server{logger: logger, router: r, cfg: cfg.Http}
}

// NewNotifierServer exposes only liveness; the notifier's work happens in its workers.
func NewNotifierServer(cfg *config.Config, logger *slog.Logger) *Server {
	r := newBaseRouter(NotifierServiceName, logger)
	return &Server{logger: logger, router: r, cfg: cfg.Http}
}

func newBaseRouter(name string, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	// request_id ends up in chi's access log and in handler loggers
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	r.Get("/ping", system.NewHandler(logger, name).Ping)
	return r
}

func InitSessionsRouter(ctx context.Context, apiKey string, h *sessions.Handler, logger *slog.Logger) *chi.Mux {
	r := newBaseRouter(SessionsServiceName, logger)

	r.Route("/sport-session", func(sr chi.Router) {
		// SYSTEM
		sr.With(middleware.SystemAPIKey(apiKey, "x-api-key", "Invalid API key", logger)).
			Get("/active-sport-sessions", h.ActiveSessions)

		// USER
		sr.Group(func(ur chi.Router) {
			ur.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))

			ur.With(middleware.CallerIdentity(false, logger)).Post("/", h.StartSession)

			ur.Group(func(owned chi.Router) {
				owned.Use(middleware.CallerIdentity(true, logger))

				owned.Get("/", h.ListSessions)
				owned.Route("/{id}", func(rr chi.Router) {
					rr.Get("/", h.GetSession)
					rr.Patch("/", h.FinishSession)
					rr.Put("/location", h.AddLocation)
				})
			})
		})
	})

	return r
}

func InitProviderRouter(apiKey string, h *incidents.Handler, logger *slog.Logger) *chi.Mux {
	r := newBaseRouter(ProviderServiceName, logger)

	r.Route("/incidents", func(ir chi.Router) {
		ir.Use(middleware.SystemAPIKey(apiKey, "X-API-Key", "Wrong API Key", logger))
		ir.Post("/", h.GenerateIncidents)
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("🚀 Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("🛑 Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
