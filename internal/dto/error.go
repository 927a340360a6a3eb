package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError carries per-field validation detail. Every failing field is
// reported, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeEmailExists        = "EMAIL_EXISTS"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUnauthenticated    = "UNAUTHENTICATED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeUsersNotFound      = "USERS_NOT_FOUND"
	ErrCodeInternal           = "INTERNAL"
)
