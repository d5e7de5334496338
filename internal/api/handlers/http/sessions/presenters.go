package sessions

import (
	"log/slog"
	"net/http"
	"time"

	"sportapp/internal/domain"
	"sportapp/internal/render"
	"sportapp/pkg/e"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type locationResponse struct {
	LocationID       uuid.UUID `json:"location_id"`
	SessionID        uuid.UUID `json:"session_id"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	Accuracy         float64   `json:"accuracy"`
	Altitude         float64   `json:"altitude"`
	AltitudeAccuracy float64   `json:"altitude_accuracy"`
	Heading          float64   `json:"heading"`
	Speed            float64   `json:"speed"`
	CreatedAt        time.Time `json:"created_at"`
}

type sessionResponse struct {
	SessionID    uuid.UUID          `json:"session_id"`
	UserID       uuid.UUID          `json:"user_id"`
	SportID      uuid.UUID          `json:"sport_id"`
	StartedAt    time.Time          `json:"started_at"`
	IsActive     bool               `json:"is_active"`
	Duration     float64            `json:"duration"`
	Steps        int                `json:"steps"`
	Distance     float64            `json:"distance"`
	Calories     float64            `json:"calories"`
	AverageSpeed float64            `json:"average_speed"`
	MinHeartrate float64            `json:"min_heartrate"`
	MaxHeartrate float64            `json:"max_heartrate"`
	AvgHeartrate float64            `json:"avg_heartrate"`
	Locations    []locationResponse `json:"locations"`
}

func presentLocation(l domain.Location) locationResponse {
	return locationResponse{
		LocationID:       l.LocationID,
		SessionID:        l.SessionID,
		Latitude:         l.Latitude,
		Longitude:        l.Longitude,
		Accuracy:         l.Accuracy,
		Altitude:         l.Altitude,
		AltitudeAccuracy: l.AltitudeAccuracy,
		Heading:          l.Heading,
		Speed:            l.Speed,
		CreatedAt:        l.CreatedAt,
	}
}

func presentSession(s *domain.SportSession) sessionResponse {
	locs := make([]locationResponse, 0, len(s.Locations))
	for _, l := range s.Locations {
		locs = append(locs, presentLocation(l))
	}
	return sessionResponse{
		SessionID:    s.SessionID,
		UserID:       s.UserID,
		SportID:      s.SportID,
		StartedAt:    s.StartedAt,
		IsActive:     s.IsActive,
		Duration:     s.Duration,
		Steps:        s.Steps,
		Distance:     s.Distance,
		Calories:     s.Calories,
		AverageSpeed: s.AverageSpeed,
		MinHeartrate: s.MinHeartrate,
		MaxHeartrate: s.MaxHeartrate,
		AvgHeartrate: s.AvgHeartrate,
		Locations:    locs,
	}
}

func sessionIDParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, e.NewValidationError([]string{"path", "id"}, "value is not a valid uuid")
	}
	return id, nil
}

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	l := h.log(r)

	level := slog.LevelWarn
	if status, _ := render.Status(err); status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	l.Log(r.Context(), level, "handler error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	render.Error(w, l, err)
}
