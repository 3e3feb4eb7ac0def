package booking

import "fmt"

// ConflictError signals a duplicate booking for the same
// (appointmentDate, email, treatment) triple.
type ConflictError struct {
	AppointmentDate string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("You already have a booking on %s", e.AppointmentDate)
}

// ValidationError reports a booking request missing required fields.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}
