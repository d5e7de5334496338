package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"sportapp/internal/api"
	"sportapp/internal/client"
	"sportapp/internal/config"
	"sportapp/internal/geozone"
	"sportapp/internal/redis"
	"sportapp/internal/service"
	"sportapp/internal/sqs"
	"sportapp/internal/storage/memory"
	"sportapp/internal/storage/postgres"
	"sportapp/internal/workers"
	"sportapp/pkg/logger"
)

const (
	ServiceSessions = "sessions"
	ServiceProvider = "provider"
	ServiceNotifier = "notifier"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	Poller     *workers.IncidentPoller
	Forwarder  *service.AlertForwarder
}

// InitComponents wires the binary named by serviceName.
func InitComponents(ctx context.Context, serviceName string, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	switch serviceName {
	case ServiceSessions:
		return InitSessions(ctx, cfg, logger)
	case ServiceProvider:
		return InitProvider(cfg, logger)
	case ServiceNotifier:
		return InitNotifier(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("unknown service %q", serviceName)
	}
}

func InitSessions(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	if err := cfg.ValidateSessions(); err != nil {
		return nil, err
	}

	c := &Components{logger: logger}

	var repo service.SportSessionRepository
	switch cfg.Sessions.Storage {
	case config.StoragePostgres:
		logger.Info("Initializing Postgres")
		storage, err := postgres.NewPostgres(ctx, cfg, logger)
		if err != nil {
			logger.Error("Failed to init postgres", slog.Any("error", err))
			return nil, fmt.Errorf("failed to init postgres: %w", err)
		}
		c.Postgres = storage
		repo = storage.Sessions
	default:
		logger.Warn("Sport sessions kept in memory; state is lost on restart")
		repo = memory.NewSportSessions()
	}

	svc := service.NewSportSessionService(repo, logger)
	c.HttpServer = api.NewSessionsServer(ctx, cfg, logger, svc)
	logger.Info("Initialized sport sessions server")

	return c, nil
}

func InitProvider(cfg *config.Config, logger *slog.Logger) (*Components, error) {
	if err := cfg.ValidateProvider(); err != nil {
		return nil, err
	}

	gen := geozone.NewGenerator(geozone.Config{
		MaxIncidents:  cfg.Provider.MaxIncidents,
		AffectedRange: cfg.Provider.AffectedRange,
	}, nil)

	logger.Info("Initialized incidents provider",
		slog.Int("max_incidents", cfg.Provider.MaxIncidents),
		slog.Float64("affected_range", cfg.Provider.AffectedRange))

	return &Components{
		logger:     logger,
		HttpServer: api.NewProviderServer(cfg, logger, gen),
	}, nil
}

func InitNotifier(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	if err := cfg.ValidateNotifier(); err != nil {
		return nil, err
	}

	n := cfg.Notifier
	c := &Components{logger: logger}

	logger.Info("Initializing Redis")
	rdb, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		if n.AlertsBackend == config.AlertsBackendRedis {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		logger.Warn("Redis unavailable; poller runs without a lease", slog.Any("error", err))
	}
	c.Redis = rdb

	var sender service.AlertSender
	switch n.AlertsBackend {
	case config.AlertsBackendSQS:
		sqsClient, err := sqs.NewClient(ctx, n.AWSRegion)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to init sqs: %w", err)
		}
		q, err := sqs.NewAlertQueue(ctx, sqsClient, n.AlertsQueue, logger)
		if err != nil {
			c.ShutdownAll()
			return nil, fmt.Errorf("failed to resolve sqs queue: %w", err)
		}
		sender = q
	default:
		q := redis.NewAlertQueue(rdb.Client, n.AlertsQueue)
		sender = q
		if cfg.Webhook.URL != "" && !cfg.Webhook.Disabled {
			c.Forwarder = service.NewAlertForwarder(logger, cfg.Webhook.URL, q)
		}
	}

	var lease workers.Lease
	if rdb != nil {
		// a lease outliving two missed cycles lets another replica take over
		lease = redis.NewPollerLock(rdb.Client, n.LockKey, 2*n.SleepTime+n.CycleTimeout)
	}

	external := client.NewExternalServices(client.Config{
		BaseURL:         n.ServicesBaseURL,
		IncidentsAPIKey: n.IncidentsAPIKey,
		SessionsAPIKey:  n.SessionsAPIKey,
		Timeout:         n.ExternalTimeout,
	}, logger)

	c.Poller = workers.NewIncidentPoller(
		external,
		external,
		service.NewAlertDispatcher(sender, logger),
		lease,
		workers.PollerConfig{Interval: n.SleepTime, CycleTimeout: n.CycleTimeout},
		logger,
	)
	c.HttpServer = api.NewNotifierServer(cfg, logger)

	logger.Info("Initialized notifier",
		slog.String("alerts_backend", n.AlertsBackend),
		slog.Duration("interval", n.SleepTime),
		slog.Bool("lease", lease != nil),
		slog.Bool("forwarder", c.Forwarder != nil))

	return c, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

// ShutdownAll stops workers first, then closes the stores they use.
func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	if c.Poller != nil {
		c.Poller.Stop()
	}
	if c.Postgres != nil {
		c.Postgres.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
