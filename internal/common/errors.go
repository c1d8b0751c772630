package common

import (
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound       = errors.New("requested resource not found")
	ErrBadRequest     = errors.New("bad request")
	ErrConflict       = errors.New("resource conflict") // e.g., username already exists
	ErrValidation     = errors.New("validation failed")
	ErrInternalServer = errors.New("internal server error")
)

// APIError carries the HTTP status and user-visible message for a failure,
// wrapping one of the sentinel kinds above.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Err: ErrConflict}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// HTTPStatusFromError maps domain errors to HTTP status codes.
func HTTPStatusFromError(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrValidation) || errors.Is(err, ErrConflict) {
		return http.StatusBadRequest
	}
	// Unique index violation raised by the store itself (e.g. a racing
	// duplicate username that slipped past the application-level lookup).
	if mongo.IsDuplicateKeyError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// MessageFromError picks the user-visible message for an error. Anything
// without an explicit message collapses to the generic 500 body.
func MessageFromError(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if HTTPStatusFromError(err) == http.StatusInternalServerError {
		return "Internal Server Error"
	}
	return err.Error()
}
