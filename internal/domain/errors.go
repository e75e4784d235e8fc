package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo functions when the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidDate is returned when a date string is malformed or names a day
// that does not exist on the calendar. Handlers should map this to HTTP 400.
var ErrInvalidDate = errors.New("invalid date")

// ErrInvalidRange is returned when the start of a date range is after its end.
// Handlers should map this to HTTP 400.
var ErrInvalidRange = errors.New("invalid date range")

// ErrUnknownLocation is returned when an origin or destination matches neither
// a port code nor a region slug. Handlers should map this to HTTP 400.
var ErrUnknownLocation = errors.New("unknown location")

// ErrDataAccess wraps any failure of the underlying storage.
// Handlers should map this to HTTP 500 without echoing the wrapped detail.
var ErrDataAccess = errors.New("data access error")

// InvalidDateError carries the offending date string.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date format: '%s'. Expected format: YYYY-MM-DD", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// UnknownLocationError names the request field (origin or destination) and the
// value that did not resolve to any port or region.
type UnknownLocationError struct {
	Field string
	Value string
}

func (e *UnknownLocationError) Error() string {
	return fmt.Sprintf("invalid %s: '%s' is not a known port code or region slug", e.Field, e.Value)
}

func (e *UnknownLocationError) Unwrap() error { return ErrUnknownLocation }
