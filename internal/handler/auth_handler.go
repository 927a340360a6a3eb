package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/dto"
	"task-manager-service/internal/mapper"
	"task-manager-service/internal/request"
	"task-manager-service/internal/response"

	"github.com/go-playground/validator/v10"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type AuthHandler struct {
	authService AuthService
	validator   *validator.Validate
}

func NewAuthHandler(authService AuthService, validator *validator.Validate) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user account and issue a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request.RegisterRequest true "Registration request"
// @Success 201 {object} response.RegisterResponse "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	role := domain.Role(req.Role)
	if role == "" {
		role = domain.RoleMember
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.RegisterResponse{
		User:  mapper.MapDomainUserToDTO(user),
		Token: token,
	}

	respondJSON(w, http.StatusCreated, resp)
}

// Login godoc
// @Summary Authenticate a user
// @Description Verify credentials and issue a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request.LoginRequest true "Login request"
// @Success 200 {object} response.LoginResponse "Token issued successfully"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := response.LoginResponse{
		User:  mapper.MapDomainUserToDTO(user),
		Token: token,
	}

	respondJSON(w, http.StatusOK, resp)
}
