package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"sportapp/internal/render"
	"sportapp/pkg/e"

	"github.com/google/uuid"
)

const UserIDHeader = "user-id"

type ctxKey string

const callerKey ctxKey = "caller_id"

// CallerIdentity reads the gateway-set user-id header into the request context.
// A missing header is rejected with 403 when required; a malformed one with 400.
func CallerIdentity(required bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				if required {
					render.Text(w, logger, http.StatusForbidden, "Missing user-id header")
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			id, err := uuid.Parse(raw)
			if err != nil {
				render.Error(w, logger, e.NewValidationError([]string{"header", UserIDHeader}, "value is not a valid uuid"))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithCallerID(r.Context(), id)))
		})
	}
}

func WithCallerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerKey, id)
}

// CallerID returns uuid.Nil when the request carried no identity.
func CallerID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(callerKey).(uuid.UUID)
	return id
}
