package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/my_errors"
)

// TokenVerifier validates a bearer token and returns the identity it
// carries. Verification is pure and safe for concurrent calls.
type TokenVerifier interface {
	VerifyToken(token string) (domain.Identity, error)
}

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext returns the authenticated requester attached by
// AuthMiddleware.
func IdentityFromContext(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// AuthMiddleware extracts and verifies the bearer token, attaching the
// identity to the request context.
func AuthMiddleware(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, http.StatusUnauthorized, "token not provided")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				respondError(w, http.StatusUnauthorized, "invalid token format")
				return
			}

			identity, err := verifier.VerifyToken(parts[1])
			if err != nil {
				respondError(w, http.StatusUnauthorized, tokenErrorMessage(err))
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminMiddleware rejects any requester whose role is not ADMIN. Runs
// after AuthMiddleware.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				respondError(w, http.StatusUnauthorized, "user is not authenticated")
				return
			}
			if !identity.IsAdmin() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				resp := dto.ErrorResponse{
					Error: dto.ErrorDetail{
						Code:    dto.ErrCodeForbidden,
						Message: "admin access required",
					},
				}
				if err := json.NewEncoder(w).Encode(resp); err != nil {
					slog.Warn("failed to encode JSON response", "error", err)
				}
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, my_errors.ErrTokenExpired):
		return my_errors.ErrTokenExpired.Error()
	case errors.Is(err, my_errors.ErrTokenInvalid):
		return my_errors.ErrTokenInvalid.Error()
	default:
		return "invalid or expired token"
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    dto.ErrCodeUnauthenticated,
			Message: message,
		},
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}
