package apperror

import (
	"errors"
	"net/http"

	"github.com/auditx/auditx/internal/domain"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrBadRequest     = &AppError{Code: "BAD_REQUEST", Message: "Bad request", Status: http.StatusBadRequest}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Unauthorized", Status: http.StatusUnauthorized}
	ErrForbidden      = &AppError{Code: "FORBIDDEN", Message: "Forbidden", Status: http.StatusForbidden}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Not found", Status: http.StatusNotFound}
	ErrConflict       = &AppError{Code: "CONFLICT", Message: "Conflict", Status: http.StatusConflict}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", Status: http.StatusInternalServerError}
)

func NewBadRequest(message string) *AppError {
	return &AppError{Code: "BAD_REQUEST", Message: message, Status: http.StatusBadRequest}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: message, Status: http.StatusUnauthorized}
}

func NewForbidden(message string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: message, Status: http.StatusForbidden}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: message, Status: http.StatusNotFound}
}

func NewConflict(message string) *AppError {
	return &AppError{Code: "CONFLICT", Message: message, Status: http.StatusConflict}
}

// MapError translates a domain error into its HTTP representation by
// error kind. Dependency failures surface as 503 so callers know the
// request is retryable; anything unclassified stays an opaque 500.
func MapError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch domain.KindOf(err) {
	case domain.KindValidation:
		return NewBadRequest(err.Error())
	case domain.KindForbidden:
		return NewForbidden(err.Error())
	case domain.KindNotFound:
		return NewNotFound(err.Error())
	case domain.KindConflict:
		return NewConflict(err.Error())
	case domain.KindDependency:
		// Collaborator failures are retryable but their details stay in
		// the logs, not the response.
		return &AppError{Code: "DEPENDENCY_ERROR", Message: "Service temporarily unavailable", Status: http.StatusServiceUnavailable}
	default:
		return ErrInternalServer
	}
}
