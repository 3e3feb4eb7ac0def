package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is an administrative record; no derived logic hangs off it.
// Image is a URL supplied by the admin client.
type Doctor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Specialty string             `bson:"specialty" json:"specialty"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
}
