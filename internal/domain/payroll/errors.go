package payroll

import "errors"

var (
	ErrInvalidClock = errors.New("clock time must be HH:MM")
	ErrInvalidShift = errors.New("clock-out is earlier than clock-in")
	ErrNegativeWage = errors.New("hourly wage must not be negative")
)
