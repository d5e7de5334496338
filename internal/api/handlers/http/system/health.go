package system

import (
	"net/http"

	"log/slog"

	"sportapp/internal/render"
)

type Handler struct {
	logger *slog.Logger
	name   string
}

// NewHandler serves liveness for the binary called name.
func NewHandler(logger *slog.Logger, name string) *Handler {
	return &Handler{logger: logger, name: name}
}

func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	render.Text(w, h.logger, http.StatusOK, h.name)
}
