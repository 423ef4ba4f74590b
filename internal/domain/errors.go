package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for transport mapping.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindForbidden
	KindValidation
	KindConflict
	KindDependency
)

// Error represents a domain-specific error
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewDependencyError wraps a collaborator failure (persistence, LLM, storage).
// Dependency errors are the only retryable kind.
func NewDependencyError(message string, cause error) *Error {
	return &Error{Kind: KindDependency, Message: message, Cause: cause}
}

// Custom errors
var (
	ErrUserNotFound     = NewError(KindNotFound, "user not found")
	ErrCompanyNotFound  = NewError(KindNotFound, "company not found")
	ErrAuditNotFound    = NewError(KindNotFound, "audit not found")
	ErrAnalysisNotFound = NewError(KindNotFound, "analysis not found")

	ErrForbidden = NewError(KindForbidden, "caller does not own this resource")

	ErrEmailTaken       = NewError(KindConflict, "email already registered")
	ErrAuditClosed      = NewError(KindConflict, "cannot modify a closed audit")
	ErrDeleteClosed     = NewError(KindConflict, "cannot delete a closed audit")
	ErrConcurrentUpdate = NewError(KindConflict, "audit was modified concurrently")

	ErrAccountInactive = NewError(KindForbidden, "account is not activated")

	ErrInvalidResetToken = NewError(KindValidation, "invalid or expired reset token")
)

// KindOf extracts the error kind, defaulting to KindDependency for
// unclassified errors so callers treat them as retryable.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindDependency
}

func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsForbidden(err error) bool  { return KindOf(err) == KindForbidden }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsConflict(err error) bool   { return KindOf(err) == KindConflict }
func IsDependency(err error) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind == KindDependency
	}
	return true
}
