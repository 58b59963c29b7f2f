// Package account defines the capability shared by the two stored account
// variants (regular users and service providers) and the kind tag used to
// tell them apart.
package account

import "strings"

// Kind distinguishes the two account collections.
type Kind string

const (
	KindUser     Kind = "user"
	KindProvider Kind = "service_provider"
)

// IsValid reports whether k names one of the two known collections.
func (k Kind) IsValid() bool {
	return k == KindUser || k == KindProvider
}

// Account is the read capability common to both variants. Mutation happens
// through the kind-specific repositories; the auth workflow dispatches on
// AccountKind to pick the right one.
type Account interface {
	AccountID() string
	AccountEmail() string
	AccountKind() Kind
	PasswordDigest() string
}

// NormalizeEmail folds an email address to its canonical stored form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
