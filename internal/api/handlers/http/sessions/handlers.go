package sessions

import (
	"context"
	"log/slog"
	"net/http"

	"sportapp/internal/domain"
	"sportapp/internal/middleware"
	"sportapp/internal/render"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type SportSessions interface {
	Start(ctx context.Context, callerID uuid.UUID, req domain.StartSessionRequest) (*domain.SportSession, error)
	AppendLocation(ctx context.Context, sessionID, callerID uuid.UUID, in domain.LocationInput) (*domain.Location, error)
	Finish(ctx context.Context, sessionID, callerID uuid.UUID, metrics domain.SessionMetrics) (*domain.SportSession, error)
	Get(ctx context.Context, sessionID, callerID uuid.UUID) (*domain.SportSession, error)
	List(ctx context.Context, callerID uuid.UUID) ([]*domain.SportSession, error)
	ActiveSnapshots(ctx context.Context) ([]domain.ActiveSnapshot, error)
}

type Handler struct {
	logger   *slog.Logger
	Sessions SportSessions
}

func NewHandler(logger *slog.Logger, sessions SportSessions) *Handler {
	return &Handler{
		logger:   logger,
		Sessions: sessions,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	body, err := middleware.DecodeJSON[StartSessionBody](r, false)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	req, err := parseStart(body)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.Sessions.Start(r.Context(), middleware.CallerID(r.Context()), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sport session started", slog.String("session_id", session.SessionID.String()))
	render.JSON(w, l, http.StatusOK, presentSession(session))
}

func (h *Handler) AddLocation(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	sessionID, err := sessionIDParam(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	body, err := middleware.DecodeJSON[LocationBody](r, false)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	in, err := parseLocation(body)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	loc, err := h.Sessions.AppendLocation(r.Context(), sessionID, middleware.CallerID(r.Context()), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Debug("location appended",
		slog.String("session_id", sessionID.String()),
		slog.String("location_id", loc.LocationID.String()))
	render.JSON(w, l, http.StatusOK, presentLocation(*loc))
}

func (h *Handler) FinishSession(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	sessionID, err := sessionIDParam(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	metrics, err := middleware.DecodeJSON[domain.SessionMetrics](r, false)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.Sessions.Finish(r.Context(), sessionID, middleware.CallerID(r.Context()), metrics)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("sport session finished", slog.String("session_id", sessionID.String()))
	render.JSON(w, l, http.StatusOK, presentSession(session))
}

func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := sessionIDParam(r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	session, err := h.Sessions.Get(r.Context(), sessionID, middleware.CallerID(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	render.JSON(w, h.log(r), http.StatusOK, presentSession(session))
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.Sessions.List(r.Context(), middleware.CallerID(r.Context()))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]sessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, presentSession(s))
	}
	render.JSON(w, h.log(r), http.StatusOK, out)
}

// ActiveSessions is mounted behind the system key; it never sees a user identity.
func (h *Handler) ActiveSessions(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.Sessions.ActiveSnapshots(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	if snapshots == nil {
		snapshots = []domain.ActiveSnapshot{}
	}
	render.JSON(w, h.log(r), http.StatusOK, snapshots)
}
