package models

import (
	"errors"
	"fmt"
)

// Deterministic outcomes of valid requests. Controllers map these with
// errors.Is / errors.As; anything unmatched surfaces as a 500.
var (
	ErrPropertyNotFound   = errors.New("property not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDatesUnavailable   = errors.New("property is already booked for the selected dates")
	ErrNotAllowed         = errors.New("not allowed to perform this action")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError carries a caller-facing reason for rejecting input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// TransitionError reports an illegal status change, including attempts to
// leave a terminal state.
type TransitionError struct {
	From BookingStatus
	To   BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking cannot move from %s to %s", e.From, e.To)
}
