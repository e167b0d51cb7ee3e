package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	h "tripplanner/internal/delivery/http/helpers"
	"tripplanner/internal/domain"
)

type contextKey string

const tripCodeKey contextKey = "tripCode"

// SetTripCode returns a context with the trip code set. Used by auth middleware.
func SetTripCode(ctx context.Context, tripCode string) context.Context {
	return context.WithValue(ctx, tripCodeKey, tripCode)
}

// TripCodeFromContext returns the authenticated trip code from the context, if present.
func TripCodeFromContext(ctx context.Context) (string, bool) {
	code, ok := ctx.Value(tripCodeKey).(string)
	return code, ok
}

// RequireAuth returns a wrapper that validates the Bearer token and sets the trip code in the request context.
// If the token is missing or invalid, it responds with 401 and does not call next.
func RequireAuth(verifier domain.TokenVerifier, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "missing token")
				return
			}
			tripCode, err := verifier.Verify(token)
			if err != nil {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid or expired token")
				return
			}
			r = r.WithContext(SetTripCode(r.Context(), tripCode))
			next(w, r)
		}
	}
}
