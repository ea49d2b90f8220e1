package factory

import "errors"

var (
	// ErrUnknownProduct is returned when no constructor is registered under a name.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrInvalidTemplate is returned when a template cannot be decoded.
	ErrInvalidTemplate = errors.New("invalid template")
)
