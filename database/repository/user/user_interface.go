package userRepo

import "doctorsportal/models"

// UserRepository defines access to portal accounts.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	// GrantAdmin sets role=admin on the user with the given hex object id,
	// upserting per the original portal's semantics.
	GrantAdmin(id string) error
}
