package textutil

import "errors"

// Sentinel errors for package textutil.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Input shape errors
	ErrMalformedUserData  = errors.New("malformed user data line")
	ErrMalformedRectangle = errors.New("malformed rectangle")
	ErrEmptyInput         = errors.New("empty input")

	// File errors
	ErrFileNotFound = errors.New("file not found")

	// Log level errors
	ErrUnknownLevel = errors.New("unknown log level")
)
