package domain

import (
	"time"

	"sportapp/pkg/e"

	"github.com/google/uuid"
)

type SessionMetrics struct {
	Duration     float64 `json:"duration" validate:"gte=0"`
	Steps        int     `json:"steps" validate:"gte=0"`
	Distance     float64 `json:"distance" validate:"gte=0"`
	Calories     float64 `json:"calories" validate:"gte=0"`
	AverageSpeed float64 `json:"average_speed" validate:"gte=0"`
	MinHeartrate float64 `json:"min_heartrate" validate:"gte=0"`
	MaxHeartrate float64 `json:"max_heartrate" validate:"gte=0"`
	AvgHeartrate float64 `json:"avg_heartrate" validate:"gte=0"`
}

type SportSession struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	SportID   uuid.UUID `json:"sport_id"`
	StartedAt time.Time `json:"started_at"`
	IsActive  bool      `json:"is_active"`
	SessionMetrics
	Locations []Location `json:"locations"`
}

type LocationInput struct {
	Latitude         float64 `json:"latitude" validate:"lat"`
	Longitude        float64 `json:"longitude" validate:"lng"`
	Accuracy         float64 `json:"accuracy"`
	Altitude         float64 `json:"altitude"`
	AltitudeAccuracy float64 `json:"altitude_accuracy"`
	Heading          float64 `json:"heading"`
	Speed            float64 `json:"speed"`
}

type Location struct {
	LocationID uuid.UUID `json:"location_id"`
	SessionID  uuid.UUID `json:"session_id"`
	LocationInput
	CreatedAt time.Time `json:"created_at"`
}

type StartSessionRequest struct {
	UserID          uuid.UUID      `json:"user_id" validate:"required"`
	SportID         uuid.UUID      `json:"sport_id" validate:"required"`
	StartedAt       time.Time      `json:"started_at" validate:"required"`
	InitialLocation *LocationInput `json:"initial_location" validate:"omitempty"`
}

// ActiveSnapshot is the latest fix of an active session.
type ActiveSnapshot struct {
	UserID    string  `json:"user_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CheckOwner reports ErrForbidden when caller does not own the session.
func (s *SportSession) CheckOwner(caller uuid.UUID) error {
	if s.UserID != caller {
		return e.ErrForbidden
	}
	return nil
}

// CheckMutable guards location appends and finish. A finished session is
// Locked for every caller; ownership is checked only for active sessions.
func (s *SportSession) CheckMutable(caller uuid.UUID) error {
	if !s.IsActive {
		return e.ErrLocked
	}
	return s.CheckOwner(caller)
}

// Finish applies terminal metrics and closes the session.
func (s *SportSession) Finish(m SessionMetrics) {
	s.SessionMetrics = m
	s.IsActive = false
}

// LatestLocation returns the location with the greatest CreatedAt; later
// entries win ties.
func (s *SportSession) LatestLocation() (Location, bool) {
	var (
		latest Location
		found  bool
	)
	for _, l := range s.Locations {
		if !found || !l.CreatedAt.Before(latest.CreatedAt) {
			latest, found = l, true
		}
	}
	return latest, found
}
