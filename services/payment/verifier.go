package payment

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ChargeVerifier confirms with the processor that a transaction id represents
// a completed charge before a booking is marked paid. The original portal
// trusted the client-submitted record outright; a nil verifier on the service
// restores that behavior for development.
type ChargeVerifier interface {
	Verify(ctx context.Context, transactionID string) error
}

// StripeVerifier checks the payment intent's status server-side.
type StripeVerifier struct{}

// Verify fetches the payment intent and requires a succeeded status.
func (StripeVerifier) Verify(ctx context.Context, transactionID string) error {
	pi, err := paymentintent.Get(transactionID, nil)
	if err != nil {
		return &VerificationError{TransactionID: transactionID, Reason: err.Error()}
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return &VerificationError{TransactionID: transactionID, Reason: "payment intent status is " + string(pi.Status)}
	}
	return nil
}
