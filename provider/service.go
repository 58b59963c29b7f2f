package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mansoorhotak/repairo-user-management-api/account"
)

var (
	// ErrUnknownExpertise signals a tag outside the fixed category list.
	ErrUnknownExpertise = errors.New("provider: unknown expertise category")
	// ErrInvalidInput signals a field-level problem in a profile update.
	ErrInvalidInput = errors.New("provider: invalid input")
)

// Service exposes profile-level operations for provider accounts. Password
// changes are deliberately out of its reach; only the reset flow rewrites
// the stored hash.
type Service struct {
	repo Repository
}

// NewService builds a Service using the provided repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// GetByID returns the provider with the given identifier.
func (s *Service) GetByID(ctx context.Context, id string) (Provider, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns up to limit providers.
func (s *Service) List(ctx context.Context, limit int) ([]Provider, error) {
	return s.repo.List(ctx, limit)
}

// ListByExpertise returns up to limit providers offering the given category.
// The tag is checked against the fixed list before the store is consulted.
func (s *Service) ListByExpertise(ctx context.Context, tag string, limit int) ([]Provider, error) {
	if !IsValidExpertise(tag) {
		return nil, ErrUnknownExpertise
	}
	return s.repo.ListByExpertise(ctx, tag, limit)
}

// UpdateProfile applies a partial, field-by-field update. Unset fields keep
// their stored values and the password hash is carried through untouched.
func (s *Service) UpdateProfile(ctx context.Context, id string, params UpdateParams) (Provider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Provider{}, err
	}

	if params.FirstName != nil {
		p.FirstName = strings.TrimSpace(*params.FirstName)
	}
	if params.LastName != nil {
		p.LastName = strings.TrimSpace(*params.LastName)
	}
	if params.Email != nil {
		email := account.NormalizeEmail(*params.Email)
		if email == "" || !strings.Contains(email, "@") {
			return Provider{}, fmt.Errorf("%w: invalid email %q", ErrInvalidInput, *params.Email)
		}
		p.Email = email
	}
	if params.Phone != nil {
		p.Phone = strings.TrimSpace(*params.Phone)
	}
	if params.Address != nil {
		p.Address = strings.TrimSpace(*params.Address)
	}
	if params.Postcode != nil {
		p.Postcode = strings.TrimSpace(*params.Postcode)
	}
	if params.Expertise != nil {
		if err := ValidateExpertise(params.Expertise); err != nil {
			return Provider{}, err
		}
		p.Expertise = params.Expertise
	}
	if params.Description != nil {
		desc := strings.TrimSpace(*params.Description)
		if len(desc) > MaxDescriptionLen {
			return Provider{}, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, MaxDescriptionLen)
		}
		p.Description = desc
	}

	return s.repo.Update(ctx, p)
}

// Delete removes the account and reports whether it existed.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.repo.Delete(ctx, id)
}

// ValidateExpertise checks that the tag set is non-empty and drawn entirely
// from the fixed category list.
func ValidateExpertise(tags []string) error {
	if len(tags) == 0 {
		return fmt.Errorf("%w: at least one expertise category is required", ErrInvalidInput)
	}
	for _, tag := range tags {
		if !IsValidExpertise(tag) {
			return fmt.Errorf("%w: %q", ErrUnknownExpertise, tag)
		}
	}
	return nil
}
