package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnauthorized ErrorCode = "UNAUTHORIZED"

	// Assessment specific errors
	ErrEmptyPool         ErrorCode = "EMPTY_POOL"
	ErrUserNotFound      ErrorCode = "USER_NOT_FOUND"
	ErrAttemptNotFound   ErrorCode = "ATTEMPT_NOT_FOUND"
	ErrInvalidCategory   ErrorCode = "INVALID_CATEGORY"
	ErrSourceUnavailable ErrorCode = "SOURCE_UNAVAILABLE"
	ErrValidation        ErrorCode = "VALIDATION_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewUnauthorizedError(message string) *DomainError {
	return NewError(ErrUnauthorized, message, nil)
}

func NewValidationError(message string) *DomainError {
	return NewError(ErrValidation, message, nil)
}

// NewEmptyPoolError signals that no valid question exists for a category
// after validation. Callers surface this as a retrievable, non-fatal
// condition rather than a crash.
func NewEmptyPoolError(category string) *DomainError {
	return NewError(ErrEmptyPool, fmt.Sprintf("no questions available for category: %s", category), nil)
}

func NewUserNotFoundError(userID string) *DomainError {
	return NewError(ErrUserNotFound, fmt.Sprintf("user not found: %s", userID), nil)
}

func NewAttemptNotFoundError(attemptID string) *DomainError {
	return NewError(ErrAttemptNotFound, fmt.Sprintf("attempt not found: %s", attemptID), nil)
}

func NewInvalidCategoryError(category string) *DomainError {
	return NewError(ErrInvalidCategory, fmt.Sprintf("invalid category: %s", category), nil)
}

func NewSourceUnavailableError(err error) *DomainError {
	return NewError(ErrSourceUnavailable, "question source unavailable", err)
}
