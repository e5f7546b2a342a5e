package controllers

import "errors"

// Domain errors surfaced to callers as human-readable messages.
var (
	ErrPastDate         = errors.New("cannot make reservations for past dates")
	ErrClosedHours      = errors.New("restaurant is closed at this time, open hours: 11:00 AM - 10:00 PM")
	ErrCapacityExceeded = errors.New("no tables available for this time slot")
	ErrNotFound         = errors.New("record not found")
)

var ErrNoPermission = &CustomError{"You do not have permission"}

type CustomError struct {
	Message string
}

func (e *CustomError) Error() string {
	return e.Message
}
