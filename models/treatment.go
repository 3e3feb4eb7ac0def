package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// AppointmentOption is a bookable treatment with its catalog of time slots.
// Slots hold the full configured list in storage; availability queries return
// a derived copy with already-booked slots removed.
type AppointmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
	Price float64            `bson:"price" json:"price"`
}

// Specialty is the names-only projection of the catalog, used by the doctor
// registration form.
type Specialty struct {
	Name string `bson:"name" json:"name"`
}
