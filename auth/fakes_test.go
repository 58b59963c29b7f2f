package auth

import (
	"context"
	"time"

	"github.com/mansoorhotak/repairo-user-management-api/provider"
	"github.com/mansoorhotak/repairo-user-management-api/user"
)

type fakeUserRepo struct {
	byID map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return user.User{}, user.ErrDuplicateEmail
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByResetToken(_ context.Context, token string, now time.Time) (user.User, error) {
	for _, u := range f.byID {
		if u.ResetToken != nil && *u.ResetToken == token && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now) {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) (user.User, error) {
	if _, ok := f.byID[u.ID]; !ok {
		return user.User{}, user.ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeUserRepo) List(_ context.Context, limit int) ([]user.User, error) {
	users := make([]user.User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, u)
		if limit > 0 && len(users) == limit {
			break
		}
	}
	return users, nil
}

type fakeProviderRepo struct {
	byID map[string]provider.Provider
}

func newFakeProviderRepo() *fakeProviderRepo {
	return &fakeProviderRepo{byID: make(map[string]provider.Provider)}
}

func (f *fakeProviderRepo) Create(_ context.Context, p provider.Provider) (provider.Provider, error) {
	for _, existing := range f.byID {
		if existing.Email == p.Email {
			return provider.Provider{}, provider.ErrDuplicateEmail
		}
	}
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProviderRepo) GetByEmail(_ context.Context, email string) (provider.Provider, error) {
	for _, p := range f.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return provider.Provider{}, provider.ErrNotFound
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id string) (provider.Provider, error) {
	p, ok := f.byID[id]
	if !ok {
		return provider.Provider{}, provider.ErrNotFound
	}
	return p, nil
}

func (f *fakeProviderRepo) GetByResetToken(_ context.Context, token string, now time.Time) (provider.Provider, error) {
	for _, p := range f.byID {
		if p.ResetToken != nil && *p.ResetToken == token && p.ResetTokenExpiry != nil && p.ResetTokenExpiry.After(now) {
			return p, nil
		}
	}
	return provider.Provider{}, provider.ErrNotFound
}

func (f *fakeProviderRepo) Update(_ context.Context, p provider.Provider) (provider.Provider, error) {
	if _, ok := f.byID[p.ID]; !ok {
		return provider.Provider{}, provider.ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeProviderRepo) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeProviderRepo) List(_ context.Context, limit int) ([]provider.Provider, error) {
	providers := make([]provider.Provider, 0, len(f.byID))
	for _, p := range f.byID {
		providers = append(providers, p)
		if limit > 0 && len(providers) == limit {
			break
		}
	}
	return providers, nil
}

func (f *fakeProviderRepo) ListByExpertise(_ context.Context, tag string, limit int) ([]provider.Provider, error) {
	providers := make([]provider.Provider, 0)
	for _, p := range f.byID {
		for _, t := range p.Expertise {
			if t == tag {
				providers = append(providers, p)
				break
			}
		}
		if limit > 0 && len(providers) == limit {
			break
		}
	}
	return providers, nil
}

type fakeNotifier struct {
	welcomes   []string
	resets     []string
	welcomeErr error
	resetErr   error
}

func (f *fakeNotifier) SendWelcome(_ context.Context, toEmail, _ string) error {
	if f.welcomeErr != nil {
		return f.welcomeErr
	}
	f.welcomes = append(f.welcomes, toEmail)
	return nil
}

func (f *fakeNotifier) SendPasswordReset(_ context.Context, _, resetURL string) error {
	if f.resetErr != nil {
		return f.resetErr
	}
	f.resets = append(f.resets, resetURL)
	return nil
}
