package ipmi

import "errors"

// Domain-specific errors for sensor querying.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrEmptyCommand is returned when the configured command line is empty.
	ErrEmptyCommand = errors.New("ipmi: command is empty")

	// ErrInvalidCommand is returned when the command line cannot be split
	// (e.g., unbalanced quotes).
	ErrInvalidCommand = errors.New("ipmi: invalid command")

	// ErrCommandFailed is returned when the sensor query command cannot be
	// started, times out, or exits non-zero.
	ErrCommandFailed = errors.New("ipmi: command failed")
)
