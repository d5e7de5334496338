package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"sportapp/internal/domain"
	"sportapp/internal/service"
)

//go:generate mockgen -source=incident_poller.go -destination=mocks/mock.go

var errCyclePanic = errors.New("incident cycle panicked")

type IncidentSource interface {
	GetIncidents(ctx context.Context) ([]domain.AdverseIncident, error)
}

type SnapshotSource interface {
	GetActiveSnapshots(ctx context.Context) ([]domain.ActiveSnapshot, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, incidents []domain.AdverseIncident, matches []domain.IncidentMatch) domain.DispatchResult
}

// Lease guards against two pollers dispatching the same cycle.
type Lease interface {
	Acquire(ctx context.Context) (bool, error)
	Release(ctx context.Context) error
}

type PollerConfig struct {
	Interval     time.Duration
	CycleTimeout time.Duration
}

// IncidentPoller fetches incidents and active positions on a fixed interval,
// matches them and dispatches alerts. A failing cycle is logged and the loop goes on.
type IncidentPoller struct {
	incidents  IncidentSource
	snapshots  SnapshotSource
	dispatcher Dispatcher
	lease      Lease
	cfg        PollerConfig
	logger     *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
}

// NewIncidentPoller builds a poller. lease may be nil for a single deployment.
func NewIncidentPoller(
	incidents IncidentSource,
	snapshots SnapshotSource,
	dispatcher Dispatcher,
	lease Lease,
	cfg PollerConfig,
	logger *slog.Logger,
) *IncidentPoller {
	if cfg.CycleTimeout <= 0 {
		cfg.CycleTimeout = time.Minute
	}
	return &IncidentPoller{
		incidents:  incidents,
		snapshots:  snapshots,
		dispatcher: dispatcher,
		lease:      lease,
		cfg:        cfg,
		logger:     logger,
		stop:       make(chan struct{}),
	}
}

// Run blocks until ctx is canceled or Stop is called. Both take effect
// between cycles; a cycle in flight always completes.
func (p *IncidentPoller) Run(ctx context.Context) {
	p.logger.Info("incident poller started", slog.Duration("interval", p.cfg.Interval))
	defer p.release()

	for {
		// detached so a shutdown never cuts a dispatch in half
		summary, err := p.RunOnce(context.WithoutCancel(ctx))
		if err != nil {
			p.logger.Error("incident cycle failed", slog.Any("error", err))
		} else {
			p.logger.Info("incident cycle done",
				slog.Int("incidents", summary.Incidents),
				slog.Int("positions", summary.Positions),
				slog.Int("notified", summary.Notified),
				slog.Int("failed", summary.Failed),
				slog.Bool("skipped", summary.Skipped))
		}

		p.logger.Debug("waiting before next cycle", slog.Duration("interval", p.cfg.Interval))
		t := time.NewTimer(p.cfg.Interval)
		select {
		case <-ctx.Done():
			t.Stop()
			p.logger.Info("incident poller stopped", slog.String("reason", ctx.Err().Error()))
			return
		case <-p.stop:
			t.Stop()
			p.logger.Info("incident poller stopped", slog.String("reason", "stop requested"))
			return
		case <-t.C:
		}
	}
}

func (p *IncidentPoller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// RunOnce performs a single fetch, match and dispatch pass.
func (p *IncidentPoller) RunOnce(ctx context.Context) (summary domain.CycleSummary, err error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.CycleTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("incident cycle panicked", slog.Any("panic", r))
			err = errCyclePanic
		}
	}()

	if p.lease != nil {
		held, err := p.lease.Acquire(ctx)
		if err != nil {
			return summary, err
		}
		if !held {
			p.logger.Info("another poller holds the lease, skipping cycle")
			summary.Skipped = true
			return summary, nil
		}
	}

	incidents, err := p.incidents.GetIncidents(ctx)
	if err != nil {
		return summary, err
	}
	summary.Incidents = len(incidents)

	positions, err := p.snapshots.GetActiveSnapshots(ctx)
	if err != nil {
		return summary, err
	}
	summary.Positions = len(positions)

	matches := service.MatchIncidents(incidents, positions)
	res := p.dispatcher.Dispatch(ctx, incidents, matches)
	summary.Notified = res.Notified
	summary.Failed = res.Failed
	return summary, nil
}

func (p *IncidentPoller) release() {
	if p.lease == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.lease.Release(ctx); err != nil {
		p.logger.Warn("lease release failed", slog.Any("error", err))
	}
}
