package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/my_errors"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s stubAuthService) Register(_ context.Context, name, email, _ string, role domain.Role) (*domain.User, string, error) {
	if s.registerErr != nil {
		return nil, "", s.registerErr
	}
	return &domain.User{ID: "u1", Name: name, Email: email, Role: role}, "token", nil
}

func (s stubAuthService) Login(_ context.Context, email, _ string) (*domain.User, string, error) {
	if s.loginErr != nil {
		return nil, "", s.loginErr
	}
	return &domain.User{ID: "u1", Email: email, Role: domain.RoleMember}, "token", nil
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register_ValidationReportsAllFields(t *testing.T) {
	h := NewAuthHandler(stubAuthService{}, validator.New())

	rec := postJSON(t, h.Register, "/auth/register", map[string]string{
		"name":     "x",
		"email":    "not-an-email",
		"password": "123",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

	fields := make(map[string]string, len(resp.Error.Fields))
	for _, fe := range resp.Error.Fields {
		fields[fe.Field] = fe.Message
	}

	// Every failing field is reported at once
	assert.Len(t, fields, 3)
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(stubAuthService{registerErr: fmt.Errorf("%w", my_errors.ErrEmailAlreadyExists)}, validator.New())

	rec := postJSON(t, h.Register, "/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, dto.ErrCodeEmailExists, resp.Error.Code)
}

func TestAuthHandler_Register_DefaultsRoleToMember(t *testing.T) {
	h := NewAuthHandler(stubAuthService{}, validator.New())

	rec := postJSON(t, h.Register, "/auth/register", map[string]string{
		"name":     "Alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		User dto.UserDTO `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, string(domain.RoleMember), resp.User.Role)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(stubAuthService{loginErr: fmt.Errorf("%w", my_errors.ErrInvalidCredentials)}, validator.New())

	rec := postJSON(t, h.Login, "/auth/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, dto.ErrCodeInvalidCredentials, resp.Error.Code)
}

func TestHandleServiceError_InternalNeverLeaks(t *testing.T) {
	rec := httptest.NewRecorder()

	handleServiceError(rec, errors.New("pq: connection refused to 10.0.0.5"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	assert.Equal(t, "internal server error", resp.Error.Message)
}

func TestHandleServiceError_MissingUsers(t *testing.T) {
	rec := httptest.NewRecorder()

	handleServiceError(rec, &my_errors.MissingUsersError{UserIDs: []string{"a", "b"}})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, dto.ErrCodeUsersNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "a, b")
}
