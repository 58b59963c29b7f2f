package auth

import "github.com/mansoorhotak/repairo-user-management-api/account"

// RegisterUserRequest contains regular-account registration data supplied
// by callers.
type RegisterUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Postcode  string `json:"postcode"`
}

// RegisterProviderRequest contains provider registration data. Expertise
// tags must come from the fixed category list.
type RegisterProviderRequest struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Phone       string   `json:"phone"`
	Address     string   `json:"address"`
	Postcode    string   `json:"postcode"`
	Expertise   []string `json:"expertise"`
	Description string   `json:"description"`
}

// LoginRequest contains login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ForgotPasswordRequest identifies the account to send a reset link to.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest carries a reset token back with the replacement
// password and the collection it belongs to.
type ResetPasswordRequest struct {
	Token       string       `json:"token"`
	NewPassword string       `json:"newPassword"`
	Kind        account.Kind `json:"kind"`
}

// LoginResult bundles the bearer token with the authenticated account and
// its kind.
type LoginResult struct {
	Token   string
	Kind    account.Kind
	Account account.Account
}
