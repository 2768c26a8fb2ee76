package task

import "errors"

// Sentinel errors for the model and store. Callers match with errors.Is.
var (
	// ErrInvalidArgument reports input rejected by validation, such as an
	// empty title or an unknown priority value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange reports a task position outside the current collection.
	ErrOutOfRange = errors.New("task position out of range")

	// ErrMalformedRecord reports a stored record that cannot be turned back
	// into a task.
	ErrMalformedRecord = errors.New("malformed task record")
)
