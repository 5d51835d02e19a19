// Package apierr defines typed API errors carrying a stable machine code
// and the HTTP status they map to at the boundary.
package apierr

import "net/http"

// Error codes returned in the response envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNoToken            = "NO_TOKEN"
	CodeInvalidTokenFormat = "INVALID_TOKEN_FORMAT"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTaskNotFound       = "TASK_NOT_FOUND"
	CodeServerError        = "SERVER_ERROR"
)

// APIError is a domain failure that the HTTP boundary can translate
// without inspecting internals.
type APIError struct {
	HTTPStatus int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewErrValidation reports malformed client input.
func NewErrValidation(message string) *APIError {
	return &APIError{HTTPStatus: http.StatusBadRequest, Code: CodeValidationError, Message: message}
}

// NewErrEmailExists reports a registration conflict. Registration conflicts
// are deliberately distinguishable, unlike login failures.
func NewErrEmailExists() *APIError {
	return &APIError{HTTPStatus: http.StatusConflict, Code: CodeEmailExists, Message: "email already registered"}
}

// NewErrInvalidCredentials reports a failed login. The same error covers
// unknown email and wrong password so accounts cannot be enumerated.
func NewErrInvalidCredentials() *APIError {
	return &APIError{HTTPStatus: http.StatusUnauthorized, Code: CodeInvalidCredentials, Message: "invalid email or password"}
}

// NewErrMissingToken reports an absent Authorization header.
func NewErrMissingToken() *APIError {
	return &APIError{HTTPStatus: http.StatusUnauthorized, Code: CodeNoToken, Message: "no authentication token provided"}
}

// NewErrInvalidTokenFormat reports an Authorization header that is not a
// bearer scheme followed by a token.
func NewErrInvalidTokenFormat() *APIError {
	return &APIError{HTTPStatus: http.StatusUnauthorized, Code: CodeInvalidTokenFormat, Message: "invalid token format"}
}

// NewErrInvalidToken reports a token that failed verification. Expired and
// forged tokens surface identically.
func NewErrInvalidToken() *APIError {
	return &APIError{HTTPStatus: http.StatusUnauthorized, Code: CodeInvalidToken, Message: "invalid or expired token"}
}

// NewErrTaskNotFound covers both a missing task and a task owned by someone
// else; the two are indistinguishable to the caller.
func NewErrTaskNotFound() *APIError {
	return &APIError{HTTPStatus: http.StatusNotFound, Code: CodeTaskNotFound, Message: "task not found"}
}

// NewErrInternal is the generic failure returned when nothing more specific
// applies. Details stay in the server log.
func NewErrInternal() *APIError {
	return &APIError{HTTPStatus: http.StatusInternalServerError, Code: CodeServerError, Message: "internal server error"}
}
