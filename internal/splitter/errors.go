package splitter

import "errors"

var (
	// ErrEmptyInput is returned when the input contains no records, not even a header
	ErrEmptyInput = errors.New("input file is empty: no header row")
	// ErrInvalidPartCount is returned when fewer than one part is requested
	ErrInvalidPartCount = errors.New("part count must be at least 1")
	// ErrNoInput is returned when no input path is configured
	ErrNoInput = errors.New("no input file specified")
)
