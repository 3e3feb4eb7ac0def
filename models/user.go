package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RoleAdmin is the only elevated role; every other user is a patient.
const RoleAdmin = "admin"

// User is a portal account created at signup. Role is empty for patients and
// elevated to "admin" by an admin-only action.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Email string             `bson:"email" json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
