package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mansoorhotak/repairo-user-management-api/account"
)

// ErrInvalidInput signals a field-level problem in a profile update.
var ErrInvalidInput = errors.New("user: invalid input")

// Service exposes profile-level operations for regular accounts. Password
// changes are deliberately out of its reach; only the reset flow rewrites
// the stored hash.
type Service struct {
	repo Repository
}

// NewService builds a Service using the provided repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID returns the user with the given identifier.
func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns up to limit users.
func (s *Service) List(ctx context.Context, limit int) ([]User, error) {
	return s.repo.List(ctx, limit)
}

// UpdateProfile applies a partial, field-by-field update. Unset fields keep
// their stored values and the password hash is carried through untouched.
func (s *Service) UpdateProfile(ctx context.Context, id string, params UpdateParams) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if params.FirstName != nil {
		u.FirstName = strings.TrimSpace(*params.FirstName)
	}
	if params.LastName != nil {
		u.LastName = strings.TrimSpace(*params.LastName)
	}
	if params.Email != nil {
		email := account.NormalizeEmail(*params.Email)
		if email == "" || !strings.Contains(email, "@") {
			return User{}, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, *params.Email)
		}
		u.Email = email
	}
	if params.Phone != nil {
		u.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.Address != nil {
		u.Address = strings.TrimSpace(*params.Address)
	}
	if params.Postcode != nil {
		u.Postcode = strings.TrimSpace(*params.Postcode)
	}

	return s.repo.Update(ctx, u)
}

// Delete removes the account and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}
