package domain

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
)

var (
	// ErrInvalidRange is returned when a start date falls after the end date it is paired with.
	ErrInvalidRange = errors.New("invalid date range")
	// ErrMissingParameter is returned when a mode-specific required field is absent.
	ErrMissingParameter = errors.New("missing required parameter")
)

// RangeError reports an ordered pair of dates that is out of order.
type RangeError struct {
	Field string
	Start civil.Date
	End   civil.Date
}

func (e *RangeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: start %s is after end %s", ErrInvalidRange, e.Start, e.End)
	}
	return fmt.Sprintf("%v: %s start %s is after end %s", ErrInvalidRange, e.Field, e.Start, e.End)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// MissingParameterError names the absent field and the mode that required it.
type MissingParameterError struct {
	Context string
	Field   string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%v: %s requires %s", ErrMissingParameter, e.Context, e.Field)
}

func (e *MissingParameterError) Unwrap() error { return ErrMissingParameter }
