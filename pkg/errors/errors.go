package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common cases.
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrInternal         = errors.New("internal error")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrSessionExpired   = errors.New("session expired")
)

// AppError represents a structured application error with HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s with id %s not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Unauthorized creates a 401 error.
func Unauthorized(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrUnauthorized,
	}
}

// Forbidden creates a 403 error.
func Forbidden(message string) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     ErrForbidden,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// EmptyCart creates the error reported when checkout runs on an empty cart.
func EmptyCart() *AppError {
	return &AppError{
		Code:    "EMPTY_CART",
		Message: "your cart is empty",
		Status:  http.StatusBadRequest,
		Err:     ErrEmptyCart,
	}
}

// NotAuthenticated creates the error reported when an operation requires a session.
func NotAuthenticated(message string) *AppError {
	return &AppError{
		Code:    "NOT_AUTHENTICATED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     ErrNotAuthenticated,
	}
}

// SessionExpired creates the error returned after the backend rejects the token.
// The wrapped chain includes ErrUnauthorized so generic handling still applies.
func SessionExpired() *AppError {
	return &AppError{
		Code:    "SESSION_EXPIRED",
		Message: "your session has expired, please log in again",
		Status:  http.StatusUnauthorized,
		Err:     fmt.Errorf("%w: %w", ErrSessionExpired, ErrUnauthorized),
	}
}

// Backend creates an error carrying a failure message reported by the backend
// inside a successful HTTP response.
func Backend(message string) *AppError {
	if message == "" {
		message = "the request could not be completed"
	}
	return &AppError{
		Code:    "BACKEND_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     ErrInternal,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// FromStatus maps an HTTP response status to the error taxonomy. The message,
// when present, comes from the backend envelope.
func FromStatus(status int, message string) *AppError {
	if message == "" {
		message = http.StatusText(status)
	}
	switch status {
	case http.StatusNotFound:
		return &AppError{Code: "NOT_FOUND", Message: message, Status: status, Err: ErrNotFound}
	case http.StatusUnauthorized:
		return Unauthorized(message)
	case http.StatusForbidden:
		return Forbidden(message)
	case http.StatusBadRequest:
		return InvalidInput(message)
	default:
		return &AppError{Code: "BACKEND_ERROR", Message: message, Status: status, Err: ErrInternal}
	}
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
