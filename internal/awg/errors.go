package awg

import "errors"

// ErrBuild is returned when a required payload field cannot be derived.
var ErrBuild = errors.New("failed to build payload")
