package bookingRepo

import "doctorsportal/models"

// ErrDuplicateBooking is returned by Insert when the unique
// (appointmentDate, email, treatment) index rejects the document.
type ErrDuplicateBooking struct {
	AppointmentDate string
}

func (e *ErrDuplicateBooking) Error() string {
	return "duplicate booking on " + e.AppointmentDate
}

// BookingRepository defines access to the booking ledger.
// Bookings are never deleted; the only mutation is MarkPaid.
type BookingRepository interface {
	Insert(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByEmail(email string) ([]models.Booking, error)
	GetByDate(date string) ([]models.Booking, error)
	MarkPaid(bookingID, transactionID, status string) error
}
