package splitter

import "errors"

var (
	// ErrInvalidInput is returned when a sentence is not valid UTF-8 text.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig is returned by New when Options are out of range.
	ErrInvalidConfig = errors.New("invalid splitter configuration")
)
