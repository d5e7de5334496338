package incidents

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"sportapp/internal/domain"
	"sportapp/internal/middleware"
	"sportapp/internal/render"
	"sportapp/pkg/e"
	"sportapp/pkg/validator"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IncidentGenerator interface {
	Generate(boundary domain.Polygon) ([]domain.AdverseIncident, error)
}

type Handler struct {
	logger    *slog.Logger
	Generator IncidentGenerator
}

func NewHandler(logger *slog.Logger, generator IncidentGenerator) *Handler {
	return &Handler{logger: logger, Generator: generator}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// GenerateIncidents answers with a fresh batch of incidents. No body, null or an
// empty list selects the fallback boundary.
func (h *Handler) GenerateIncidents(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	boundary, err := middleware.DecodeJSON[domain.Polygon](r, true)
	if err != nil {
		l.Warn("invalid polygon body", slog.Any("error", err))
		render.Error(w, l, err)
		return
	}
	if err := validatePolygon(boundary); err != nil {
		render.Error(w, l, err)
		return
	}

	incidents, err := h.Generator.Generate(boundary)
	if err != nil {
		if errors.Is(err, e.ErrInvalidInput) {
			l.Warn("polygon rejected", slog.Int("vertices", len(boundary)), slog.Any("error", err))
			render.Error(w, l, e.NewValidationError([]string{"body"}, err.Error()))
			return
		}
		render.Error(w, l, err)
		return
	}

	l.Info("incidents generated",
		slog.Int("count", len(incidents)),
		slog.Bool("fallback_boundary", len(boundary) == 0))
	render.JSON(w, l, http.StatusOK, incidents)
}

func validatePolygon(p domain.Polygon) error {
	var out e.ValidationError
	for i, pt := range p {
		err := validator.ValidateStruct(pt)
		if err == nil {
			continue
		}
		var verr *e.ValidationError
		if !errors.As(err, &verr) {
			return err
		}
		for _, fe := range verr.Errors {
			loc := append([]string{"body", strconv.Itoa(i)}, fe.Loc[1:]...)
			out.Errors = append(out.Errors, e.FieldError{Loc: loc, Msg: fe.Msg})
		}
	}
	if len(out.Errors) > 0 {
		return &out
	}
	return nil
}
