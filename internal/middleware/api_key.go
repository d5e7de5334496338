package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"sportapp/internal/render"
)

// SystemAPIKey admits only requests whose header carries the shared system key.
// It is independent from per-user identity.
func SystemAPIKey(key, header, rejectMsg string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(header)
			if key == "" || subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				logger.Warn("invalid system api key",
					slog.String("path", r.URL.Path),
					slog.Bool("header_present", got != ""))
				render.Text(w, logger, http.StatusForbidden, rejectMsg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
