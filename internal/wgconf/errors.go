package wgconf

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by the parser.
var (
	ErrFileAccess = errors.New("config file not accessible")
	ErrConfig     = errors.New("invalid config")
)

// MissingFieldError reports a required key absent from a section.
type MissingFieldError struct {
	Section string
	Field   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required %s field: %s", strings.ToLower(e.Section), e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrConfig
}

// KeyError reports a key value that is not a well-formed WireGuard key.
type KeyError struct {
	Section string
	Field   string
	Err     error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("invalid %s field %s: %v", strings.ToLower(e.Section), e.Field, e.Err)
}

func (e *KeyError) Unwrap() []error {
	return []error{ErrConfig, e.Err}
}
