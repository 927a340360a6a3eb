package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/my_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	identity domain.Identity
	err      error
}

func (s stubVerifier) VerifyToken(string) (domain.Identity, error) {
	return s.identity, s.err
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, identity.UserID)
	})
}

func TestAuthMiddleware(t *testing.T) {
	identity := domain.Identity{UserID: "u1", Email: "u1@example.com", Role: domain.RoleMember}

	t.Run("attaches identity for valid token", func(t *testing.T) {
		handler := AuthMiddleware(stubVerifier{identity: identity})(protectedHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer some-token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", rec.Body.String())
	})

	t.Run("rejects missing header", func(t *testing.T) {
		handler := AuthMiddleware(stubVerifier{identity: identity})(protectedHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrCodeUnauthenticated, decodeErrorCode(t, rec))
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		handler := AuthMiddleware(stubVerifier{identity: identity})(protectedHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects expired token with precise message", func(t *testing.T) {
		handler := AuthMiddleware(stubVerifier{err: my_errors.ErrTokenExpired})(protectedHandler(t))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var resp dto.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, my_errors.ErrTokenExpired.Error(), resp.Error.Message)
	})
}

func TestAdminMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("allows admin", func(t *testing.T) {
		admin := domain.Identity{UserID: "a1", Role: domain.RoleAdmin}
		handler := AuthMiddleware(stubVerifier{identity: admin})(AdminMiddleware()(next))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("forbids member", func(t *testing.T) {
		member := domain.Identity{UserID: "m1", Role: domain.RoleMember}
		handler := AuthMiddleware(stubVerifier{identity: member})(AdminMiddleware()(next))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, dto.ErrCodeForbidden, decodeErrorCode(t, rec))
	})
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error.Code
}
