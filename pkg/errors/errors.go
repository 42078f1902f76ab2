package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Messages returned to API clients.
const (
	MsgMissingFields    = "Missing required fields"
	MsgNoUpdateData     = "No update data provided"
	MsgInvalidBody      = "Invalid request body"
	MsgUserNotFound     = "User not found"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternalServer   = "Internal server error"
)

// Common application errors
var (
	ErrMissingFields = NewValidationError("", MsgMissingFields)
	ErrNoUpdateData  = NewValidationError("", MsgNoUpdateData)
	ErrUserNotFound  = NewNotFoundError("user", MsgUserNotFound)
)

// ValidationError represents a request the API refuses to forward to the store
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// PublicMessage returns the message exposed to API clients
func (e *ValidationError) PublicMessage() string {
	return e.Message
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// PublicMessage returns the message exposed to API clients
func (e *NotFoundError) PublicMessage() string {
	return e.Error()
}

// InternalError represents a failure of the store call. The wrapped error is
// logged but never exposed to clients.
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// PublicMessage returns the message exposed to API clients
func (e *InternalError) PublicMessage() string {
	return MsgInternalServer
}

// HTTPError is implemented by errors that map onto an HTTP response
type HTTPError interface {
	error
	HTTPStatus() int
	PublicMessage() string
}

// ToHTTP resolves the status code and client message for err.
// Errors that carry no HTTP mapping are reported as internal errors.
func ToHTTP(err error) (int, string) {
	var he HTTPError
	if stderrors.As(err, &he) {
		return he.HTTPStatus(), he.PublicMessage()
	}
	return http.StatusInternalServerError, MsgInternalServer
}
