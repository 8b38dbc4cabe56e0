package domain

import "errors"

// Domain errors represent the failure categories of a calculation run.
// They are wrapped with context and can be checked with errors.Is.
var (
	// ErrFileAccess is returned when the input file cannot be opened or read.
	ErrFileAccess = errors.New("adventcalc: input file access")

	// ErrParse is returned when a token is not valid decimal integer text.
	ErrParse = errors.New("adventcalc: parse")

	// ErrFieldCount is returned when a line does not hold the expected number of integers.
	ErrFieldCount = errors.New("adventcalc: unexpected field count")

	// ErrOverflow is returned when an aggregate does not fit in a signed 64-bit integer.
	ErrOverflow = errors.New("adventcalc: integer overflow")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("adventcalc: invalid configuration")
)
