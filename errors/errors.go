package errors

import "errors"

// Static errors for label construction and configuration.
var (
	// ErrInvalidFormat is returned when a display format cannot be parsed.
	ErrInvalidFormat = errors.New("invalid display format")

	// ErrInvalidDirection is returned when a time direction is neither increase nor decrease.
	ErrInvalidDirection = errors.New("invalid time direction")

	// ErrInvalidDuration is returned when a tick delta or offset string cannot be parsed.
	ErrInvalidDuration = errors.New("invalid duration")

	// ErrInvalidStartTime is returned when the start value is not zero, a number of seconds or an RFC3339 time.
	ErrInvalidStartTime = errors.New("invalid start time")

	// ErrInvalidAttribute is returned when a style attribute key or value is not supported.
	ErrInvalidAttribute = errors.New("invalid style attribute")

	// ErrLoadConfig is returned when the configuration file or environment cannot be read.
	ErrLoadConfig = errors.New("failed to load configuration")

	// ErrInvalidOutputFormat is returned when an output format is neither yaml nor json.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrRunProgram is returned when the terminal program exits abnormally.
	ErrRunProgram = errors.New("failed to run terminal program")
)
