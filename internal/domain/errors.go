package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSlotNotFound    = errors.New("slot not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrSlotTaken = errors.New("slot is already booked")
)

var (
	ErrValidation = errors.New("validation error")
)

// ConflictField names the identity field that already holds a booking.
type ConflictField string

const (
	ConflictEmail   ConflictField = "email"
	ConflictAccount ConflictField = "account"
	ConflictName    ConflictField = "name"
)

// ConflictError reports a one-booking-per-identity violation. The matched
// field and value are carried as data so callers never parse messages.
type ConflictError struct {
	Field ConflictField
	Value string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q already has a booked slot", e.Field, e.Value)
}
