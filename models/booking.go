package models

import "time"

// Reconciliation states for a booking's payment.
const (
	ReconcilePending      = "pending"
	ReconcileConfirmed    = "confirmed"
	ReconcileInconsistent = "inconsistent"
)

// Booking is a patient's claim on one slot of one treatment on one date.
// At most one booking may exist per (appointmentDate, email, treatment);
// the bookings collection carries a unique compound index enforcing this.
type Booking struct {
	ID              string  `bson:"id" json:"id"`
	AppointmentDate string  `bson:"appointmentDate" json:"appointmentDate"` // "YYYY-MM-DD"
	Treatment       string  `bson:"treatment" json:"treatment"`             // AppointmentOption.Name
	Patient         string  `bson:"patient,omitempty" json:"patient,omitempty"`
	Email           string  `bson:"email" json:"email"`
	Slot            string  `bson:"slot" json:"slot"`
	Price           float64 `bson:"price" json:"price"`
	Phone           string  `bson:"phone,omitempty" json:"phone,omitempty"`

	Paid            bool      `bson:"paid" json:"paid"`
	TransactionID   string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	ReconcileStatus string    `bson:"reconcileStatus" json:"reconcileStatus"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}
