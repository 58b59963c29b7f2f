package user

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRepository struct {
	byID map[string]User
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]User)}
}

func (f *fakeRepository) Create(_ context.Context, u User) (User, error) {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return User{}, ErrDuplicateEmail
		}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (User, error) {
	u, ok := f.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (f *fakeRepository) GetByResetToken(_ context.Context, token string, now time.Time) (User, error) {
	for _, u := range f.byID {
		if u.ResetToken != nil && *u.ResetToken == token && u.ResetTokenExpiry != nil && u.ResetTokenExpiry.After(now) {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (f *fakeRepository) Update(_ context.Context, u User) (User, error) {
	if _, ok := f.byID[u.ID]; !ok {
		return User{}, ErrNotFound
	}
	u.UpdatedAt = time.Now().UTC()
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeRepository) List(_ context.Context, limit int) ([]User, error) {
	users := make([]User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, u)
		if limit > 0 && len(users) == limit {
			break
		}
	}
	return users, nil
}

func seedUser(repo *fakeRepository) User {
	u, _ := repo.Create(context.Background(), User{
		ID:           "u1",
		FirstName:    "Alice",
		LastName:     "Smith",
		Email:        "alice@example.com",
		Phone:        "07700900001",
		PasswordHash: "$2a$10$fakedigestfakedigestfakedigest",
	})
	return u
}

func strPtr(s string) *string { return &s }

func TestService_UpdateProfilePartial(t *testing.T) {
	repo := newFakeRepository()
	seeded := seedUser(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		FirstName: strPtr("  Alicia "),
		Phone:     strPtr("07700900099"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.FirstName != "Alicia" {
		t.Fatalf("expected trimmed first name Alicia, got %q", updated.FirstName)
	}
	if updated.Phone != "07700900099" {
		t.Fatalf("expected new phone, got %q", updated.Phone)
	}
	if updated.LastName != "Smith" {
		t.Fatalf("unset field must keep its value, got %q", updated.LastName)
	}
	if updated.Email != "alice@example.com" {
		t.Fatalf("unset email must keep its value, got %q", updated.Email)
	}
}

func TestService_UpdateProfileKeepsPasswordHash(t *testing.T) {
	repo := newFakeRepository()
	seeded := seedUser(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		FirstName: strPtr("Alicia"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.PasswordHash != seeded.PasswordHash {
		t.Fatal("profile update must not alter the stored password hash")
	}
}

func TestService_UpdateProfileNormalizesEmail(t *testing.T) {
	repo := newFakeRepository()
	seeded := seedUser(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		Email: strPtr(" NEW@Example.COM "),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Email != "new@example.com" {
		t.Fatalf("expected normalized email, got %q", updated.Email)
	}

	if _, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		Email: strPtr("not-an-email"),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestService_UpdateProfileUnknownUser(t *testing.T) {
	svc := NewService(newFakeRepository())

	if _, err := svc.UpdateProfile(context.Background(), "missing", UpdateParams{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := newFakeRepository()
	seeded := seedUser(repo)
	svc := NewService(repo)

	deleted, err := svc.Delete(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true")
	}

	deleted, err = svc.Delete(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if deleted {
		t.Fatal("expected second delete to report false")
	}
}
