package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"task-manager-service/internal/dto"
	"task-manager-service/internal/my_errors"

	"github.com/go-playground/validator/v10"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Warn("failed to encode JSON response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondWithError(w, status, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

func respondWithError(w http.ResponseWriter, status int, errResp *dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		slog.Warn("failed to encode error response", "error", err)
	}
}

// respondValidationError reports every failing field, not just the first.
func respondValidationError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	fields := make([]dto.FieldError, len(validationErrs))
	for i, fe := range validationErrs {
		fields[i] = dto.FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldErrorMessage(fe),
		}
	}

	respondWithError(w, http.StatusBadRequest, &dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    dto.ErrCodeValidation,
			Message: "validation error",
			Fields:  fields,
		},
	})
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed on %s", fe.Tag())
	}
}

// handleServiceError maps domain errors to a stable status and code.
// Unexpected errors are logged and never leak internals to the caller.
func handleServiceError(w http.ResponseWriter, err error) {
	if missing, ok := my_errors.AsMissingUsers(err); ok {
		respondError(w, http.StatusBadRequest, dto.ErrCodeUsersNotFound, missing.Error())
		return
	}

	switch {
	case errors.Is(err, my_errors.ErrEmailAlreadyExists):
		respondError(w, http.StatusConflict, dto.ErrCodeEmailExists, my_errors.ErrEmailAlreadyExists.Error())
	case errors.Is(err, my_errors.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, dto.ErrCodeInvalidCredentials, my_errors.ErrInvalidCredentials.Error())
	case errors.Is(err, my_errors.ErrForbidden):
		respondError(w, http.StatusForbidden, dto.ErrCodeForbidden, err.Error())
	case errors.Is(err, my_errors.ErrTeamNotFound),
		errors.Is(err, my_errors.ErrTaskNotFound),
		errors.Is(err, my_errors.ErrUserNotFound):
		respondError(w, http.StatusNotFound, dto.ErrCodeNotFound, err.Error())
	case errors.Is(err, my_errors.ErrEmptyField),
		errors.Is(err, my_errors.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
	default:
		slog.Error("unexpected service error", "error", err)
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, "internal server error")
	}
}
