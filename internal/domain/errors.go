package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrUpstreamUnavailable = errors.New("news provider unreachable")
)

// ValidationError reports the first offending field together with its
// declared message. Handlers surface Message verbatim with a 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// UpstreamError carries a status code and message received from the news
// provider so the caller can relay them as-is.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("news provider returned %d: %s", e.StatusCode, e.Message)
}
