package service

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidCredentials is returned by Login for both a nonexistent
	// username and a wrong password. Collapsing the two prevents username
	// enumeration through distinguishable error messages.
	ErrInvalidCredentials = errors.New("invalid username/password")

	// ErrTokenIsExpired marks a token whose signature checked out but whose
	// validity window has elapsed.
	ErrTokenIsExpired = errors.New("token is expired")

	// ErrTokenIsInvalid marks every other token defect: bad signature,
	// wrong issuer, malformed string. Kept separate from ErrTokenIsExpired
	// for diagnostics, though callers surface both identically.
	ErrTokenIsInvalid = errors.New("token is invalid")

	// ErrTokenCreationFailed wraps failures of the token signing step.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// ValidationError carries one message per malformed request field.
// Handlers render it as a 400 response with an errors list.
// Match with errors.As.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError constructs a *ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
