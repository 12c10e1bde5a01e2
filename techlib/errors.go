package techlib

import "errors"

// Sentinel errors for the technology library model.
var (
	// ErrStaticMutation indicates a setter was called after MakeStatic.
	ErrStaticMutation = errors.New("techlib: write to a latched (static) entity")

	// ErrMissingField indicates FullyDefined found a required field absent
	// or out of its valid range.
	ErrMissingField = errors.New("techlib: required field missing or out of range")
)
