package payment

import (
	"context"
	"errors"
	"testing"

	paymentRepo "doctorsportal/database/repository/payment"
	"doctorsportal/models"

	"go.uber.org/zap"
)

type fakePaymentRepo struct {
	payments        []models.Payment
	supportsTxn     bool
	bookings        *fakeBookingLedger
	transactionalOK bool
	updateStatusErr error
}

func (f *fakePaymentRepo) Insert(p *models.Payment) error {
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakePaymentRepo) UpdateStatus(paymentID, status string) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	for i := range f.payments {
		if f.payments[i].ID == paymentID {
			f.payments[i].Status = status
			return nil
		}
	}
	return errors.New("payment not found")
}

func (f *fakePaymentRepo) ReconcileTransactionally(ctx context.Context, p *models.Payment) error {
	if !f.supportsTxn {
		return paymentRepo.ErrTransactionsUnsupported
	}
	// Both writes or neither.
	if err := f.bookings.MarkPaid(p.BookingID, p.TransactionID, models.ReconcileConfirmed); err != nil {
		return err
	}
	f.payments = append(f.payments, *p)
	f.transactionalOK = true
	return nil
}

type fakeBookingLedger struct {
	bookings    map[string]*models.Booking
	markPaidErr error
}

func (f *fakeBookingLedger) Insert(b *models.Booking) error { return nil }

func (f *fakeBookingLedger) GetByID(id string) (*models.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingLedger) GetByEmail(email string) ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingLedger) GetByDate(date string) ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingLedger) MarkPaid(id, txID, status string) error {
	if f.markPaidErr != nil {
		return f.markPaidErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Paid = true
	b.TransactionID = txID
	b.ReconcileStatus = status
	return nil
}

type fakeVerifier struct {
	err error
}

func (f fakeVerifier) Verify(ctx context.Context, transactionID string) error { return f.err }

func newService(supportsTxn bool, verifier ChargeVerifier) (*DefaultPaymentService, *fakePaymentRepo, *fakeBookingLedger) {
	ledger := &fakeBookingLedger{bookings: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", Email: "alice@example.com", ReconcileStatus: models.ReconcilePending},
	}}
	payments := &fakePaymentRepo{supportsTxn: supportsTxn, bookings: ledger}
	svc := NewPaymentService(payments, ledger, verifier, zap.NewNop(), "usd")
	return svc, payments, ledger
}

func newPayment() models.Payment {
	return models.Payment{
		BookingID:     "bk-1",
		Email:         "alice@example.com",
		Price:         80,
		TransactionID: "pi_123",
	}
}

func TestReconcileTransactional(t *testing.T) {
	svc, payments, ledger := newService(true, nil)

	result, err := svc.Reconcile(context.Background(), newPayment())
	if err != nil {
		t.Fatalf("Reconcile returned error: %v", err)
	}
	if result.Status != models.ReconcileConfirmed {
		t.Errorf("status = %q, want %q", result.Status, models.ReconcileConfirmed)
	}
	if !payments.transactionalOK {
		t.Error("expected the transactional path to be taken")
	}
	b := ledger.bookings["bk-1"]
	if !b.Paid || b.TransactionID != "pi_123" {
		t.Errorf("booking not reconciled: paid=%v txid=%q", b.Paid, b.TransactionID)
	}
}

func TestReconcileSequentialFallback(t *testing.T) {
	svc, payments, ledger := newService(false, nil)

	result, err := svc.Reconcile(context.Background(), newPayment())
	if err != nil {
		t.Fatalf("Reconcile returned error: %v", err)
	}
	if result.Status != models.ReconcileConfirmed {
		t.Errorf("status = %q, want %q", result.Status, models.ReconcileConfirmed)
	}
	if len(payments.payments) != 1 {
		t.Errorf("payment records = %d, want 1", len(payments.payments))
	}
	if got := payments.payments[0].Status; got != models.ReconcileConfirmed {
		t.Errorf("stored payment status = %q, want %q", got, models.ReconcileConfirmed)
	}
	if !ledger.bookings["bk-1"].Paid {
		t.Error("booking not marked paid on fallback path")
	}
}

func TestReconcilePartialFailureSurfaced(t *testing.T) {
	svc, payments, ledger := newService(false, nil)
	ledger.markPaidErr = errors.New("connection reset")

	result, err := svc.Reconcile(context.Background(), newPayment())

	var partial *InconsistentError
	if !errors.As(err, &partial) {
		t.Fatalf("expected InconsistentError, got %v", err)
	}
	if result == nil || result.Status != models.ReconcileInconsistent {
		t.Errorf("expected inconsistent payment state, got %+v", result)
	}
	// The payment record was saved; the inconsistency must not be masked,
	// and the stored record itself must carry it.
	if len(payments.payments) != 1 {
		t.Errorf("payment records = %d, want 1", len(payments.payments))
	}
	if got := payments.payments[0].Status; got != models.ReconcileInconsistent {
		t.Errorf("stored payment status = %q, want %q", got, models.ReconcileInconsistent)
	}
	if ledger.bookings["bk-1"].Paid {
		t.Error("booking must not read as paid after a failed update")
	}
}

func TestReconcileFallbackStatusUpdateFailure(t *testing.T) {
	svc, payments, ledger := newService(false, nil)
	payments.updateStatusErr = errors.New("connection reset")

	result, err := svc.Reconcile(context.Background(), newPayment())

	// The booking was marked paid but the payment record could not be
	// flipped from pending; that mismatch is still reported, not success.
	var partial *InconsistentError
	if !errors.As(err, &partial) {
		t.Fatalf("expected InconsistentError, got %v", err)
	}
	if result == nil || result.Status != models.ReconcileInconsistent {
		t.Errorf("expected inconsistent payment state, got %+v", result)
	}
	if !ledger.bookings["bk-1"].Paid {
		t.Error("booking should be paid when only the status update failed")
	}
}

func TestReconcileVerificationFailure(t *testing.T) {
	svc, payments, ledger := newService(true, fakeVerifier{err: &VerificationError{
		TransactionID: "pi_123",
		Reason:        "payment intent status is requires_payment_method",
	}})

	_, err := svc.Reconcile(context.Background(), newPayment())

	var unverified *VerificationError
	if !errors.As(err, &unverified) {
		t.Fatalf("expected VerificationError, got %v", err)
	}
	if len(payments.payments) != 0 {
		t.Error("nothing may be persisted when verification fails")
	}
	if ledger.bookings["bk-1"].Paid {
		t.Error("booking must stay unpaid when verification fails")
	}
}

func TestReconcileValidation(t *testing.T) {
	svc, _, _ := newService(true, nil)
	ctx := context.Background()

	missingBooking := newPayment()
	missingBooking.BookingID = ""
	if _, err := svc.Reconcile(ctx, missingBooking); err == nil {
		t.Error("expected error for missing bookingId")
	}

	missingTx := newPayment()
	missingTx.TransactionID = ""
	if _, err := svc.Reconcile(ctx, missingTx); err == nil {
		t.Error("expected error for missing transactionId")
	}
}

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{80, 8000},
		{79.99, 7999},
		{0.1, 10},
		{129.99, 12999},
	}
	for _, tc := range cases {
		if got := minorUnits(tc.price); got != tc.want {
			t.Errorf("minorUnits(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestCreateIntentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, _ := newService(true, nil)

	if _, err := svc.CreateIntent(context.Background(), models.PaymentIntentRequest{Price: 0}); err == nil {
		t.Error("expected error for zero price")
	}
	if _, err := svc.CreateIntent(context.Background(), models.PaymentIntentRequest{Price: -5}); err == nil {
		t.Error("expected error for negative price")
	}
}
