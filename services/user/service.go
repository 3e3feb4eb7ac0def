package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"
)

// ErrUnknownUser reports a token request for an email with no account.
var ErrUnknownUser = errors.New("no user exists for that email")

// Default token lifetime, matching the original portal's two-day tokens.
const tokenTTL = 48 * time.Hour

// UserService owns portal accounts, role checks and token issuance.
type UserService interface {
	Register(user models.User) error
	GetAll() ([]models.User, error)
	IsAdmin(email string) (bool, error)
	GrantAdmin(id string) error
	IssueToken(email string) (string, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Register stores a new account from signup.
func (s *DefaultUserService) Register(user models.User) error {
	if user.Email == "" {
		return errors.New("missing email")
	}
	if err := s.Repo.Create(&user); err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}
	return nil
}

// GetAll lists every account.
func (s *DefaultUserService) GetAll() ([]models.User, error) {
	users, err := s.Repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// IsAdmin reports whether the email's account holds the admin role.
// An absent account is simply not an admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, fmt.Errorf("failed to check admin role for %s: %w", email, err)
	}
	return u.IsAdmin(), nil
}

// GrantAdmin elevates the account with the given id to admin.
func (s *DefaultUserService) GrantAdmin(id string) error {
	if err := s.Repo.GrantAdmin(id); err != nil {
		return fmt.Errorf("failed to grant admin role: %w", err)
	}
	return nil
}

// IssueToken signs a JWT embedding the email, provided an account exists for
// it. Unknown emails get ErrUnknownUser and no token.
func (s *DefaultUserService) IssueToken(email string) (string, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return "", fmt.Errorf("failed to look up user %s: %w", email, err)
	}
	if u == nil {
		return "", ErrUnknownUser
	}

	token, err := utils.GenerateToken(email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
