package display

import "errors"

var (
	// ErrInvalidLevel is returned for header levels outside 1..6.
	ErrInvalidLevel = errors.New("header level must be between 1 and 6")
	// ErrInvalidStatus is returned for unknown status indicator states.
	ErrInvalidStatus = errors.New("unknown status")
)
