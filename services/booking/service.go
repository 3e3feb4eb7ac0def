package booking

import (
	"context"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingService owns the booking ledger: creation with the duplicate
// invariant, self-scoped listing, and single fetch.
type BookingService interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	ListByEmail(email string) ([]models.Booking, error)
	GetByID(id string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo  bookingRepo.BookingRepository
	Cache availability.ViewCache
}

// Create inserts a booking. The bookings collection's unique compound index
// rejects a second booking for the same (appointmentDate, email, treatment),
// which surfaces here as *ConflictError with a message naming the date.
func (s *DefaultBookingService) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if err := validateBooking(booking); err != nil {
		return nil, err
	}

	booking.ID = uuid.New().String()
	booking.Paid = false
	booking.TransactionID = ""
	booking.ReconcileStatus = models.ReconcilePending

	if err := s.Repo.Insert(&booking); err != nil {
		if dup, ok := err.(*bookingRepo.ErrDuplicateBooking); ok {
			return nil, &ConflictError{AppointmentDate: dup.AppointmentDate}
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidateAvailability(ctx, booking.AppointmentDate)
	return &booking, nil
}

// invalidateAvailability drops the cached remaining-slots view for the
// booking's date so the consumed slot disappears from the next query.
func (s *DefaultBookingService) invalidateAvailability(ctx context.Context, date string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, availability.CacheKey(date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("date", date), zap.Error(err))
	}
}

// ListByEmail returns every booking owned by the email. Callers must have
// already passed the self-scope policy check.
func (s *DefaultBookingService) ListByEmail(email string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// GetByID returns one booking, or (nil, nil) when absent.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return booking, nil
}

func validateBooking(b models.Booking) error {
	switch {
	case b.AppointmentDate == "":
		return &ValidationError{Field: "appointmentDate"}
	case b.Email == "":
		return &ValidationError{Field: "email"}
	case b.Treatment == "":
		return &ValidationError{Field: "treatment"}
	case b.Slot == "":
		return &ValidationError{Field: "slot"}
	}
	return nil
}
