package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/mansoorhotak/repairo-user-management-api/account"
	"github.com/mansoorhotak/repairo-user-management-api/provider"
	"github.com/mansoorhotak/repairo-user-management-api/user"
)

// ErrAccountNotFound signals that neither collection holds a match.
var ErrAccountNotFound = errors.New("auth: account not found")

// Resolver locates an account across both collections without assuming
// which kind it is. Users are probed before providers, so on the improbable
// collision the regular account wins.
type Resolver struct {
	users     user.Repository
	providers provider.Repository
}

// NewResolver wires a resolver over the two kind-specific repositories.
func NewResolver(users user.Repository, providers provider.Repository) *Resolver {
	return &Resolver{users: users, providers: providers}
}

// FindByEmail returns the first account matching email, user collection
// first. The kind is available through the returned account.
func (r *Resolver) FindByEmail(ctx context.Context, email string) (account.Account, error) {
	u, err := r.users.GetByEmail(ctx, email)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("auth: resolve by email: %w", err)
	}

	p, err := r.providers.GetByEmail(ctx, email)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, provider.ErrNotFound) {
		return nil, fmt.Errorf("auth: resolve by email: %w", err)
	}

	return nil, ErrAccountNotFound
}

// FindByID follows the same two-step probe order as FindByEmail.
func (r *Resolver) FindByID(ctx context.Context, id string) (account.Account, error) {
	u, err := r.users.GetByID(ctx, id)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("auth: resolve by id: %w", err)
	}

	p, err := r.providers.GetByID(ctx, id)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, provider.ErrNotFound) {
		return nil, fmt.Errorf("auth: resolve by id: %w", err)
	}

	return nil, ErrAccountNotFound
}
