package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidUserID is returned for identifiers that could escape the keys
// directory.
var ErrInvalidUserID = errors.New("invalid user ID")

// InputError reports a rejected caller-supplied value.
type InputError struct {
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid user ID %q: %s", e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidUserID
}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the settings for errors.
func (s *Settings) Validate() error {
	if s.KeysDir == "" {
		return fmt.Errorf("keys_dir is required")
	}

	if err := validateLogLevel(s.Log.Level); err != nil {
		return err
	}

	if s.QR.Size < 0 {
		return fmt.Errorf("qr.size must not be negative")
	}

	return nil
}

// ValidateUserID rejects identifiers that are empty or contain path
// separators or a parent-directory sequence.
func ValidateUserID(id string) error {
	if id == "" {
		return &InputError{Value: id, Reason: "must not be empty"}
	}
	if strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return &InputError{Value: id, Reason: "contains path manipulation characters"}
	}
	if strings.ContainsRune(id, 0) {
		return &InputError{Value: id, Reason: "contains a NUL byte"}
	}
	return nil
}

func validateLogLevel(level string) error {
	for _, l := range validLogLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("invalid log level '%s', must be one of: %s", level, strings.Join(validLogLevels, ", "))
}
