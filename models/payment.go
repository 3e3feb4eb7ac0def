package models

import "time"

// Payment is a record of a completed charge, created once per successful
// payment. Status mirrors the reconciliation outcome for the referenced
// booking and is the only field updated after insert.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Email         string    `bson:"email" json:"email"`
	Price         float64   `bson:"price" json:"price"`
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// PaymentIntentRequest carries the fields the client submits to start a
// Stripe charge for a booking.
type PaymentIntentRequest struct {
	BookingID string  `json:"bookingId"`
	Price     float64 `json:"price"`
}
