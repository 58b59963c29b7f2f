package provider

import (
	"time"

	"github.com/mansoorhotak/repairo-user-management-api/account"
)

// MaxDescriptionLen bounds the business description accepted at
// registration and on profile updates.
const MaxDescriptionLen = 500

// Provider is the domain representation of a service-provider account. It
// mirrors the service_providers table and carries no JSON annotations.
type Provider struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	Postcode         string
	Expertise        []string
	Description      string
	PasswordHash     string
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (p Provider) AccountID() string         { return p.ID }
func (p Provider) AccountEmail() string      { return p.Email }
func (p Provider) AccountKind() account.Kind { return account.KindProvider }
func (p Provider) PasswordDigest() string    { return p.PasswordHash }

// UpdateParams contains the optional fields of a partial profile update.
// Nil pointers leave the stored value untouched; the password hash is never
// modified through a profile update.
type UpdateParams struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Phone       *string
	Address     *string
	Postcode    *string
	Expertise   []string
	Description *string
}
