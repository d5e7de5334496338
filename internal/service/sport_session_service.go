package service

import (
	"context"
	"log/slog"
	"time"

	"sportapp/internal/domain"
	"sportapp/pkg/e"
	"sportapp/pkg/validator"

	"github.com/google/uuid"
)

type SportSessionService struct {
	repo   SportSessionRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewSportSessionService(repo SportSessionRepository, logger *slog.Logger) *SportSessionService {
	return &SportSessionService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the clock used for location timestamps.
func (s *SportSessionService) WithClock(now func() time.Time) *SportSessionService {
	s.now = now
	return s
}

// Start opens an active session. callerID is uuid.Nil when the request carried
// no identity header; otherwise it must match req.UserID.
func (s *SportSessionService) Start(ctx context.Context, callerID uuid.UUID, req domain.StartSessionRequest) (*domain.SportSession, error) {
	const op = "service.SportSessionService.Start"

	if err := validator.ValidateStruct(req); err != nil {
		return nil, err
	}
	if callerID != uuid.Nil && callerID != req.UserID {
		s.logger.Warn("start rejected: caller is not the session owner",
			slog.String("caller_id", callerID.String()),
			slog.String("user_id", req.UserID.String()))
		return nil, e.Wrap(op, e.ErrForbidden)
	}

	session := &domain.SportSession{
		SessionID: uuid.New(),
		UserID:    req.UserID,
		SportID:   req.SportID,
		StartedAt: req.StartedAt.UTC(),
		IsActive:  true,
		Locations: []domain.Location{},
	}
	if req.InitialLocation != nil {
		session.Locations = append(session.Locations, s.newLocation(session.SessionID, *req.InitialLocation))
	}

	if err := s.repo.Create(ctx, session); err != nil {
		s.logger.Error("create session failed", slog.String("op", op), slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("session started",
		slog.String("session_id", session.SessionID.String()),
		slog.String("user_id", session.UserID.String()),
		slog.Int("locations", len(session.Locations)))
	return session, nil
}

func (s *SportSessionService) AppendLocation(ctx context.Context, sessionID, callerID uuid.UUID, in domain.LocationInput) (*domain.Location, error) {
	const op = "service.SportSessionService.AppendLocation"

	if err := validator.ValidateStruct(in); err != nil {
		return nil, err
	}

	loc := s.newLocation(sessionID, in)
	if err := s.repo.AppendLocation(ctx, sessionID, callerID, &loc); err != nil {
		s.logger.Warn("append location failed",
			slog.String("op", op),
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err))
		return nil, err
	}
	return &loc, nil
}

func (s *SportSessionService) Finish(ctx context.Context, sessionID, callerID uuid.UUID, metrics domain.SessionMetrics) (*domain.SportSession, error) {
	const op = "service.SportSessionService.Finish"

	if err := validator.ValidateStruct(metrics); err != nil {
		return nil, err
	}

	session, err := s.repo.Finish(ctx, sessionID, callerID, metrics)
	if err != nil {
		s.logger.Warn("finish session failed",
			slog.String("op", op),
			slog.String("session_id", sessionID.String()),
			slog.Any("error", err))
		return nil, err
	}

	s.logger.Info("session finished", slog.String("session_id", sessionID.String()))
	return session, nil
}

func (s *SportSessionService) Get(ctx context.Context, sessionID, callerID uuid.UUID) (*domain.SportSession, error) {
	session, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := session.CheckOwner(callerID); err != nil {
		return nil, e.Wrap("service.SportSessionService.Get", err)
	}
	return session, nil
}

func (s *SportSessionService) List(ctx context.Context, callerID uuid.UUID) ([]*domain.SportSession, error) {
	return s.repo.ListByUser(ctx, callerID)
}

func (s *SportSessionService) ActiveSnapshots(ctx context.Context) ([]domain.ActiveSnapshot, error) {
	snapshots, err := s.repo.ActiveSnapshots(ctx)
	if err != nil {
		s.logger.Error("active snapshots failed", slog.Any("error", err))
		return nil, err
	}
	s.logger.Debug("active snapshots served", slog.Int("count", len(snapshots)))
	return snapshots, nil
}

func (s *SportSessionService) newLocation(sessionID uuid.UUID, in domain.LocationInput) domain.Location {
	return domain.Location{
		LocationID:    uuid.New(),
		SessionID:     sessionID,
		LocationInput: in,
		CreatedAt:     s.now(),
	}
}
