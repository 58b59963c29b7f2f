package user

import (
	"time"

	"github.com/mansoorhotak/repairo-user-management-api/account"
)

// User is the domain representation of a regular account. It mirrors the
// users table and carries no JSON annotations so it can be reused by
// different presentation layers.
type User struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	Address          string
	Postcode         string
	PasswordHash     string
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (u User) AccountID() string         { return u.ID }
func (u User) AccountEmail() string      { return u.Email }
func (u User) AccountKind() account.Kind { return account.KindUser }
func (u User) PasswordDigest() string    { return u.PasswordHash }

// UpdateParams contains the optional fields of a partial profile update.
// Nil pointers leave the stored value untouched; the password hash is never
// modified through a profile update.
type UpdateParams struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Address   *string
	Postcode  *string
}
