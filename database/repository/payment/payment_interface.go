package paymentRepo

import (
	"context"
	"errors"

	"doctorsportal/models"
)

// ErrTransactionsUnsupported reports that the connected deployment cannot run
// multi-document transactions (standalone mongod). Callers fall back to
// sequential writes and must surface any partial failure.
var ErrTransactionsUnsupported = errors.New("store does not support transactions")

// PaymentRepository persists payment records. Payments are append-only apart
// from the reconciliation status.
type PaymentRepository interface {
	Insert(payment *models.Payment) error
	// UpdateStatus records the reconciliation outcome on a stored payment.
	UpdateStatus(paymentID, status string) error
	// ReconcileTransactionally inserts the payment and marks its booking paid
	// inside a single mongo session transaction.
	ReconcileTransactionally(ctx context.Context, payment *models.Payment) error
}
