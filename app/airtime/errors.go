package airtime

import "errors"

// Error kinds for temporal parsing and conversion. Callers match with
// errors.Is; the wrapped message carries the offending token.
var (
	ErrInvalidFormat       = errors.New("invalid format")
	ErrInvalidRange        = errors.New("component out of range")
	ErrInvalidCalendarDate = errors.New("invalid calendar date")
	ErrInvalidTimeToken    = errors.New("invalid time token")
	ErrUnrecognizedFormat  = errors.New("unrecognized format")
)
