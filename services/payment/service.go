package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentService creates Stripe payment intents and reconciles submitted
// payments against their bookings.
type PaymentService interface {
	CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error)
	Reconcile(ctx context.Context, payment models.Payment) (*models.Payment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Payments paymentRepo.PaymentRepository
	Bookings bookingRepo.BookingRepository
	Verifier ChargeVerifier
	Logger   *zap.Logger
	Currency string
}

// NewPaymentService wires a DefaultPaymentService.
func NewPaymentService(payments paymentRepo.PaymentRepository, bookings bookingRepo.BookingRepository, verifier ChargeVerifier, logger *zap.Logger, currency string) *DefaultPaymentService {
	return &DefaultPaymentService{
		Payments: payments,
		Bookings: bookings,
		Verifier: verifier,
		Logger:   logger,
		Currency: currency,
	}
}

// minorUnits converts a price in major currency units to Stripe's minor
// units, rounding so fractional prices like 79.99 do not lose a cent to
// float truncation. Two-decimal currencies only.
func minorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent asks Stripe for a payment intent over the booking price and
// returns the client secret used to complete the charge out-of-band.
func (s *DefaultPaymentService) CreateIntent(ctx context.Context, req models.PaymentIntentRequest) (string, error) {
	if req.Price <= 0 {
		return "", errors.New("invalid payment amount")
	}

	amount := minorUnits(req.Price)
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(s.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.Logger.Info("created payment intent",
		zap.String("bookingId", req.BookingID), zap.Int64("amount", amount))
	return pi.ClientSecret, nil
}

// Reconcile records the payment and marks the referenced booking paid. The
// two writes run in one mongo transaction; on deployments without transaction
// support it falls back to sequential writes, and a failure of the second
// write is surfaced as *InconsistentError with the payment left in the
// inconsistent state, never masked as success.
func (s *DefaultPaymentService) Reconcile(ctx context.Context, p models.Payment) (*models.Payment, error) {
	if p.BookingID == "" {
		return nil, errors.New("missing bookingId")
	}
	if p.TransactionID == "" {
		return nil, errors.New("missing transactionId")
	}

	if s.Verifier != nil {
		if err := s.Verifier.Verify(ctx, p.TransactionID); err != nil {
			s.Logger.Warn("payment verification failed",
				zap.String("transactionId", p.TransactionID), zap.Error(err))
			return nil, err
		}
	}

	p.ID = uuid.New().String()
	p.CreatedAt = time.Now()

	// Inside a transaction both writes land together, so the payment can go
	// in already confirmed.
	p.Status = models.ReconcileConfirmed
	err := s.Payments.ReconcileTransactionally(ctx, &p)
	if err == nil {
		s.Logger.Info("payment reconciled",
			zap.String("bookingId", p.BookingID), zap.String("transactionId", p.TransactionID))
		return &p, nil
	}
	if !errors.Is(err, paymentRepo.ErrTransactionsUnsupported) {
		return nil, fmt.Errorf("failed to reconcile payment: %w", err)
	}

	// Sequential fallback for standalone deployments. The payment is stored
	// as pending and flipped only once the booking update lands, so a partial
	// failure is visible on the stored record, not just the response.
	p.Status = models.ReconcilePending
	if err := s.Payments.Insert(&p); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if err := s.Bookings.MarkPaid(p.BookingID, p.TransactionID, models.ReconcileConfirmed); err != nil {
		p.Status = models.ReconcileInconsistent
		if uerr := s.Payments.UpdateStatus(p.ID, models.ReconcileInconsistent); uerr != nil {
			s.Logger.Error("could not stamp payment as inconsistent",
				zap.String("paymentId", p.ID), zap.Error(uerr))
		}
		s.Logger.Error("payment saved but booking update failed",
			zap.String("bookingId", p.BookingID), zap.Error(err))
		return &p, &InconsistentError{BookingID: p.BookingID, Cause: err}
	}
	if err := s.Payments.UpdateStatus(p.ID, models.ReconcileConfirmed); err != nil {
		p.Status = models.ReconcileInconsistent
		s.Logger.Error("booking marked paid but payment status not updated",
			zap.String("paymentId", p.ID), zap.Error(err))
		return &p, &InconsistentError{BookingID: p.BookingID, Cause: err}
	}
	p.Status = models.ReconcileConfirmed

	s.Logger.Info("payment reconciled without transaction support",
		zap.String("bookingId", p.BookingID), zap.String("transactionId", p.TransactionID))
	return &p, nil
}
