package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a business rule violation with a stable code
// that the interface layer can map to a transport status.
type DomainError struct {
	Code    string
	Message string
	cause   error
}

func (e *DomainError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is allows errors.Is matching on the error code.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel errors for errors.Is checks across layers.
var (
	ErrNotFound           = &DomainError{Code: "NOT_FOUND", Message: "resource not found"}
	ErrForbidden          = &DomainError{Code: "FORBIDDEN", Message: "access denied"}
	ErrInvalidInput       = &DomainError{Code: "INVALID_INPUT", Message: "invalid input"}
	ErrAlreadyExists      = &DomainError{Code: "ALREADY_EXISTS", Message: "resource already exists"}
	ErrUnauthorized       = &DomainError{Code: "UNAUTHORIZED", Message: "authentication required"}
	ErrInvalidCredentials = &DomainError{Code: "INVALID_CREDENTIALS", Message: "invalid credentials"}
	ErrInternal           = &DomainError{Code: "INTERNAL_ERROR", Message: "internal error"}
)

// NewNotFoundError creates a not-found error for a named resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewForbiddenError creates an access-denied error.
func NewForbiddenError(message string) *DomainError {
	return &DomainError{
		Code:    "FORBIDDEN",
		Message: message,
	}
}

// NewInvalidInputError creates a validation error.
func NewInvalidInputError(message string) *DomainError {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
	}
}

// NewAlreadyExistsError creates a duplicate-resource error.
func NewAlreadyExistsError(message string) *DomainError {
	return &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: message,
	}
}

// NewUnauthorizedError creates an authentication error.
func NewUnauthorizedError(message string) *DomainError {
	return &DomainError{
		Code:    "UNAUTHORIZED",
		Message: message,
	}
}

// NewInternalError wraps an unexpected failure without leaking its detail
// to callers.
func NewInternalError(cause error) *DomainError {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "internal error",
		cause:   cause,
	}
}
