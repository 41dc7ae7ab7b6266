package actions

import (
	"errors"
	"fmt"
)

// Common errors for action handling.
var (
	ErrMissingUserID = errors.New("user ID required")
)

// ActionError represents a structured error with a hint.
type ActionError struct {
	Message string
	Hint    string
	Err     error
}

func (e *ActionError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s\n%s", e.Message, e.Hint)
	}
	return e.Message
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// WrapError wraps an error with a message and hint.
func WrapError(err error, message, hint string) *ActionError {
	return &ActionError{Message: message, Hint: hint, Err: err}
}

// MissingUserIDError creates a usage error for a missing user ID.
func MissingUserIDError(command string) *ActionError {
	return &ActionError{
		Message: "user ID required",
		Hint:    fmt.Sprintf("Usage: awgenc %s <user_id>", command),
		Err:     ErrMissingUserID,
	}
}
