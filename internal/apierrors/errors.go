package apierrors

import (
	"fmt"
	"net/http"
)

// APIError carries an HTTP status code and a user-facing message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// BadRequest builds a 400 error for input validation failures.
func BadRequest(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message}
}

// InternalError builds a 500 error for configuration and upstream failures.
func InternalError(message string) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Message: message}
}
