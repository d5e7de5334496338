package render

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"sportapp/pkg/e"
)

type Message struct {
	Message any `json:"message"`
}

type validationBody struct {
	Errors []e.FieldError `json:"errors"`
}

func JSON(w http.ResponseWriter, logger *slog.Logger, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("json encode failed", slog.Any("error", err))
	}
}

func Text(w http.ResponseWriter, logger *slog.Logger, code int, msg string) {
	JSON(w, logger, code, Message{Message: msg})
}

// Error maps err to a status and writes {"message": ...}. Validation errors keep
// their field list under message.errors.
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	var verr *e.ValidationError
	if errors.As(err, &verr) {
		JSON(w, logger, http.StatusBadRequest, Message{Message: validationBody{Errors: verr.Errors}})
		return
	}

	status, msg := Status(err)
	if status >= http.StatusInternalServerError && logger != nil {
		logger.Error("request failed", slog.Any("error", err))
	}
	Text(w, logger, status, msg)
}

func Status(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound, "Sport session not found"
	case errors.Is(err, e.ErrForbidden):
		return http.StatusForbidden, "You do not have access to this sport session"
	case errors.Is(err, e.ErrLocked):
		return http.StatusLocked, "Sport session is not active"
	case errors.Is(err, e.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, e.ErrConflict), errors.Is(err, e.ErrUniqueViolation):
		return http.StatusConflict, "Conflict"
	case errors.Is(err, e.ErrExternalService):
		return http.StatusBadGateway, "Upstream service failure"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
