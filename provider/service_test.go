package provider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fakeRepository struct {
	byID map[string]Provider
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[string]Provider)}
}

func (f *fakeRepository) Create(_ context.Context, p Provider) (Provider, error) {
	for _, existing := range f.byID {
		if existing.Email == p.Email {
			return Provider{}, ErrDuplicateEmail
		}
	}
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (Provider, error) {
	for _, p := range f.byID {
		if p.Email == email {
			return p, nil
		}
	}
	return Provider{}, ErrNotFound
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (Provider, error) {
	p, ok := f.byID[id]
	if !ok {
		return Provider{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepository) GetByResetToken(_ context.Context, token string, now time.Time) (Provider, error) {
	for _, p := range f.byID {
		if p.ResetToken != nil && *p.ResetToken == token && p.ResetTokenExpiry != nil && p.ResetTokenExpiry.After(now) {
			return p, nil
		}
	}
	return Provider{}, ErrNotFound
}

func (f *fakeRepository) Update(_ context.Context, p Provider) (Provider, error) {
	if _, ok := f.byID[p.ID]; !ok {
		return Provider{}, ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	f.byID[p.ID] = p
	return p, nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) (bool, error) {
	if _, ok := f.byID[id]; !ok {
		return false, nil
	}
	delete(f.byID, id)
	return true, nil
}

func (f *fakeRepository) List(_ context.Context, limit int) ([]Provider, error) {
	providers := make([]Provider, 0, len(f.byID))
	for _, p := range f.byID {
		providers = append(providers, p)
		if limit > 0 && len(providers) == limit {
			break
		}
	}
	return providers, nil
}

func (f *fakeRepository) ListByExpertise(_ context.Context, tag string, limit int) ([]Provider, error) {
	providers := make([]Provider, 0)
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

func seedProvider(repo *fakeRepository) Provider {
	p, _ := repo.Create(context.Background(), Provider{
		ID:           "p1",
		FirstName:    "Bob",
		LastName:     "Jones",
		Email:        "bob@example.com",
		Expertise:    []string{"plumbing"},
		Description:  "Pipework.",
		PasswordHash: "$2a$10$fakedigestfakedigestfakedigest",
	})
	return p
}

func strPtr(s string) *string { return &s }

func TestValidateExpertise(t *testing.T) {
	if err := ValidateExpertise([]string{"plumbing", "roofing"}); err != nil {
		t.Fatalf("valid tags rejected: %v", err)
	}
	if err := ValidateExpertise(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty set, got %v", err)
	}
	if err := ValidateExpertise([]string{"plumbing", "alchemy"}); !errors.Is(err, ErrUnknownExpertise) {
		t.Fatalf("expected ErrUnknownExpertise, got %v", err)
	}
}

func TestExpertiseCategoriesCopy(t *testing.T) {
	cats := ExpertiseCategories()
	if len(cats) == 0 {
		t.Fatal("expected a non-empty category list")
	}
	cats[0] = "tampered"
	if ExpertiseCategories()[0] == "tampered" {
		t.Fatal("callers must not be able to mutate the category list")
	}
}

func TestService_ListByExpertiseValidatesTag(t *testing.T) {
	svc := NewService(newFakeRepository())

	if _, err := svc.ListByExpertise(context.Background(), "alchemy", 10); !errors.Is(err, ErrUnknownExpertise) {
		t.Fatalf("expected ErrUnknownExpertise, got %v", err)
	}
}

func TestService_ListByExpertiseFilters(t *testing.T) {
	repo := newFakeRepository()
	seedProvider(repo)
	repo.Create(context.Background(), Provider{
		ID:        "p2",
		FirstName: "Cara",
		LastName:  "Lee",
		Email:     "cara@example.com",
		Expertise: []string{"electrical"},
	})
	svc := NewService(repo)

	matches, err := svc.ListByExpertise(context.Background(), "plumbing", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(matches) != 1 || matches[0].ID != "p1" {
		t.Fatalf("expected only p1, got %+v", matches)
	}
}

func TestService_UpdateProfileExpertiseAndDescription(t *testing.T) {
	repo := newFakeRepository()
	seeded := seedProvider(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		Expertise:   []string{"electrical", "locksmith"},
		Description: strPtr("  Rewiring and locks. "),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if len(updated.Expertise) != 2 || updated.Expertise[0] != "electrical" {
		t.Fatalf("unexpected expertise: %v", updated.Expertise)
	}
	if updated.Description != "Rewiring and locks." {
		t.Fatalf("expected trimmed description, got %q", updated.Description)
	}

	if _, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		Expertise: []string{"alchemy"},
	}); !errors.Is(err, ErrUnknownExpertise) {
		t.Fatalf("expected ErrUnknownExpertise, got %v", err)
	}

	if _, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		Description: strPtr(strings.Repeat("x", MaxDescriptionLen+1)),
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized description, got %v", err)
	}
}

func TestService_UpdateProfileKeepsPasswordHash(t *testing.T) {
	repo := newFakeRepository()
	seeded := seedProvider(repo)
	svc := NewService(repo)

	updated, err := svc.UpdateProfile(context.Background(), seeded.ID, UpdateParams{
		FirstName: strPtr("Robert"),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash != seeded.PasswordHash {
		t.Fatal("profile update must not alter the stored password hash")
	}
}
