package service

import (
	"context"
	"time"

	"sportapp/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// SportSessionRepository persists sessions. AppendLocation and Finish must
// load the session, run SportSession.CheckMutable and write in one atomic step.
type SportSessionRepository interface {
	Create(ctx context.Context, session *domain.SportSession) error
	AppendLocation(ctx context.Context, sessionID, callerID uuid.UUID, loc *domain.Location) error
	Finish(ctx context.Context, sessionID, callerID uuid.UUID, metrics domain.SessionMetrics) (*domain.SportSession, error)
	Get(ctx context.Context, sessionID uuid.UUID) (*domain.SportSession, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.SportSession, error)
	ActiveSnapshots(ctx context.Context) ([]domain.ActiveSnapshot, error)
}

// AlertSender hands one message to the delivery boundary.
type AlertSender interface {
	Send(ctx context.Context, msg domain.AdverseIncidentMessage) error
}

// AlertQueue is the consuming side of the redis alert queue.
type AlertQueue interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.AdverseIncidentMessage, error)
}
