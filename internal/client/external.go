package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"sportapp/internal/domain"
	"sportapp/pkg/e"

	"github.com/go-resty/resty/v2"
)

const (
	incidentsPath       = "/incidents/"
	activeSessionsPath  = "/sport-session/active-sport-sessions"
	incidentsKeyHeader  = "X-API-Key"
	sessionsKeyHeader   = "x-api-key"
	defaultRetryCount   = 2
	defaultRetryWait    = 500 * time.Millisecond
	defaultRetryMaxWait = 2 * time.Second
)

type Config struct {
	BaseURL         string
	IncidentsAPIKey string
	SessionsAPIKey  string
	Timeout         time.Duration
}

// ExternalServices talks to the incident provider and the sport-session service.
type ExternalServices struct {
	http   *resty.Client
	cfg    Config
	logger *slog.Logger
}

func NewExternalServices(cfg Config, logger *slog.Logger) *ExternalServices {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(defaultRetryCount).
		SetRetryWaitTime(defaultRetryWait).
		SetRetryMaxWaitTime(defaultRetryMaxWait).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ExternalServices{http: httpClient, cfg: cfg, logger: logger}
}

// GetIncidents asks the provider for a fresh batch over its fallback boundary.
func (c *ExternalServices) GetIncidents(ctx context.Context) ([]domain.AdverseIncident, error) {
	var incidents []domain.AdverseIncident
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(incidentsKeyHeader, c.cfg.IncidentsAPIKey).
		SetResult(&incidents).
		Post(incidentsPath)
	if err := c.check("client.ExternalServices.GetIncidents", resp, err); err != nil {
		return nil, err
	}
	c.logger.Debug("incidents fetched", slog.Int("count", len(incidents)))
	return incidents, nil
}

func (c *ExternalServices) GetActiveSnapshots(ctx context.Context) ([]domain.ActiveSnapshot, error) {
	var snapshots []domain.ActiveSnapshot
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader(sessionsKeyHeader, c.cfg.SessionsAPIKey).
		SetResult(&snapshots).
		Get(activeSessionsPath)
	if err := c.check("client.ExternalServices.GetActiveSnapshots", resp, err); err != nil {
		return nil, err
	}
	c.logger.Debug("active snapshots fetched", slog.Int("count", len(snapshots)))
	return snapshots, nil
}

func (c *ExternalServices) check(op string, resp *resty.Response, err error) error {
	if err != nil {
		c.logger.Error("external call failed", slog.String("op", op), slog.Any("error", err))
		return fmt.Errorf("%s: %w", op, errors.Join(e.ErrExternalService, err))
	}
	if !resp.IsSuccess() {
		c.logger.Error("external call rejected",
			slog.String("op", op),
			slog.Int("status_code", resp.StatusCode()),
			slog.String("body", resp.String()))
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode(), e.ErrExternalService)
	}
	return nil
}
