package payment

import "fmt"

// VerificationError reports a transaction id the processor would not confirm.
// Nothing is persisted when verification fails.
type VerificationError struct {
	TransactionID string
	Reason        string
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("payment %s could not be verified: %s", e.TransactionID, e.Reason)
}

// InconsistentError reports a partial reconciliation: the payment record and
// its booking disagree after a failed sequential write. The stored state
// needs operator attention and must never be reported as success.
type InconsistentError struct {
	BookingID string
	Cause     error
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("payment for booking %s left in inconsistent state: %v", e.BookingID, e.Cause)
}

func (e *InconsistentError) Unwrap() error { return e.Cause }
