package my_errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel my_errors for business logic
var (
	// Auth my_errors
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token my_errors
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenVerification = errors.New("error to verify token")

	// Access my_errors
	ErrForbidden = errors.New("access denied")

	// Not-found my_errors
	ErrUserNotFound = errors.New("user not found")
	ErrTeamNotFound = errors.New("team not found")
	ErrTaskNotFound = errors.New("task not found")

	// Validation my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)

// MissingUsersError reports the exact user ids that were requested but do
// not exist. Raised before any mutation is attempted.
type MissingUsersError struct {
	UserIDs []string
}

func (e *MissingUsersError) Error() string {
	return fmt.Sprintf("failed to remove user(s): %s", strings.Join(e.UserIDs, ", "))
}

func AsMissingUsers(err error) (*MissingUsersError, bool) {
	var missing *MissingUsersError
	if errors.As(err, &missing) {
		return missing, true
	}
	return nil, false
}
