package memory

import (
	"context"
	"fmt"
	"sync"

	"sportapp/internal/domain"
	"sportapp/pkg/e"

	"github.com/google/uuid"
)

// SportSessions keeps sessions in process memory for local runs and tests.
// A single lock serializes writes, so finish and append never interleave.
type SportSessions struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.SportSession
	order    []uuid.UUID
}

func NewSportSessions() *SportSessions {
	return &SportSessions{sessions: map[uuid.UUID]*domain.SportSession{}}
}

func (r *SportSessions) Create(_ context.Context, s *domain.SportSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[s.SessionID]; ok {
		return fmt.Errorf("memory.SportSessions.Create: %w", e.ErrUniqueViolation)
	}
	r.sessions[s.SessionID] = clone(s)
	r.order = append(r.order, s.SessionID)
	return nil
}

func (r *SportSessions) AppendLocation(_ context.Context, sessionID, callerID uuid.UUID, loc *domain.Location) error {
	const op = "memory.SportSessions.AppendLocation"

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	if err := s.CheckMutable(callerID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.Locations = append(s.Locations, *loc)
	return nil
}

func (r *SportSessions) Finish(_ context.Context, sessionID, callerID uuid.UUID, m domain.SessionMetrics) (*domain.SportSession, error) {
	const op = "memory.SportSessions.Finish"

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	if err := s.CheckMutable(callerID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.Finish(m)
	return clone(s), nil
}

func (r *SportSessions) Get(_ context.Context, sessionID uuid.UUID) (*domain.SportSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("memory.SportSessions.Get: %w", e.ErrNotFound)
	}
	return clone(s), nil
}

func (r *SportSessions) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.SportSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.SportSession, 0)
	for _, id := range r.order {
		if s := r.sessions[id]; s.UserID == userID {
			out = append(out, clone(s))
		}
	}
	return out, nil
}

func (r *SportSessions) ActiveSnapshots(_ context.Context) ([]domain.ActiveSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.ActiveSnapshot, 0)
	for _, id := range r.order {
		s := r.sessions[id]
		if !s.IsActive {
			continue
		}
		latest, ok := s.LatestLocation()
		if !ok {
			continue
		}
		out = append(out, domain.ActiveSnapshot{
			UserID:    s.UserID.String(),
			Latitude:  latest.Latitude,
			Longitude: latest.Longitude,
		})
	}
	return out, nil
}

func clone(s *domain.SportSession) *domain.SportSession {
	c := *s
	c.Locations = append(make([]domain.Location, 0, len(s.Locations)), s.Locations...)
	return &c
}
