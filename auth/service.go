package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mansoorhotak/repairo-user-management-api/account"
	"github.com/mansoorhotak/repairo-user-management-api/provider"
	"github.com/mansoorhotak/repairo-user-management-api/user"
)

var (
	// ErrInvalidCredentials signals wrong email or password. Unknown email
	// and bad password are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("auth: invalid email or password")
	// ErrDuplicateEmail signals that the email is taken within the target
	// collection.
	ErrDuplicateEmail = errors.New("auth: email already registered")
	// ErrInvalidResetToken signals a reset token that matches no account or
	// has expired.
	ErrInvalidResetToken = errors.New("auth: invalid or expired reset token")
	// ErrWeakPassword signals a password below the minimum length.
	ErrWeakPassword = errors.New("auth: password must be at least 8 characters")
	// ErrValidation signals a field-level input problem.
	ErrValidation = errors.New("auth: invalid input")
)

// Notifier delivers account-lifecycle emails. Implementations decide the
// transport; the workflow only cares whether delivery failed.
type Notifier interface {
	SendWelcome(ctx context.Context, toEmail, name string) error
	SendPasswordReset(ctx context.Context, toEmail, resetURL string) error
}

// Service orchestrates the account lifecycle: registration, login,
// forgot-password, and reset-password over both collections.
type Service struct {
	users        user.Repository
	providers    provider.Repository
	resolver     *Resolver
	tokens       *TokenIssuer
	mail         Notifier
	logger       *slog.Logger
	resetBaseURL string

	idGenerator   func() string
	now           func() time.Time
	newResetToken func() (string, error)
}

// NewService wires the workflow. mail may be nil, in which case no
// notifications are attempted. resetBaseURL is the public origin embedded
// in reset links.
func NewService(users user.Repository, providers provider.Repository, tokens *TokenIssuer, mail Notifier, logger *slog.Logger, resetBaseURL string) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:         users,
		providers:     providers,
		resolver:      NewResolver(users, providers),
		tokens:        tokens,
		mail:          mail,
		logger:        logger,
		resetBaseURL:  strings.TrimRight(resetBaseURL, "/"),
		idGenerator:   func() string { return uuid.NewString() },
		now:           time.Now,
		newResetToken: NewResetToken,
	}
}

// WithIDGenerator overrides account id generation, for tests.
func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.idGenerator = gen
	return s
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithResetTokenSource overrides reset-token generation, for tests.
func (s *Service) WithResetTokenSource(gen func() (string, error)) *Service {
	s.newResetToken = gen
	return s
}

// Resolver exposes the dual-collection lookup used by the workflow.
func (s *Service) Resolver() *Resolver {
	return s.resolver
}

// RegisterUser creates a regular account. The welcome email is best-effort:
// a delivery failure is logged and swallowed, never failing the
// registration.
func (s *Service) RegisterUser(ctx context.Context, req RegisterUserRequest) (user.User, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = account.NormalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.Postcode = strings.TrimSpace(req.Postcode)

	if err := validateIdentity(req.FirstName, req.LastName, req.Email); err != nil {
		return user.User{}, err
	}
	if len(req.Password) < 8 {
		return user.User{}, ErrWeakPassword
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return user.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, fmt.Errorf("auth: check existing user: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return user.User{}, err
	}

	created, err := s.users.Create(ctx, user.User{
		ID:           s.idGenerator(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Postcode:     req.Postcode,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return user.User{}, ErrDuplicateEmail
		}
		return user.User{}, err
	}

	s.sendWelcome(ctx, created.Email, created.FirstName)

	return created, nil
}

// RegisterProvider creates a service-provider account. Expertise tags must
// be non-empty and drawn from the fixed category list.
func (s *Service) RegisterProvider(ctx context.Context, req RegisterProviderRequest) (provider.Provider, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = account.NormalizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Address = strings.TrimSpace(req.Address)
	req.Postcode = strings.TrimSpace(req.Postcode)
	req.Description = strings.TrimSpace(req.Description)

	if err := validateIdentity(req.FirstName, req.LastName, req.Email); err != nil {
		return provider.Provider{}, err
	}
	if len(req.Password) < 8 {
		return provider.Provider{}, ErrWeakPassword
	}
	if err := provider.ValidateExpertise(req.Expertise); err != nil {
		return provider.Provider{}, fmt.Errorf("%w: %s", ErrValidation, err)
	}
	if len(req.Description) > provider.MaxDescriptionLen {
		return provider.Provider{}, fmt.Errorf("%w: description exceeds %d characters", ErrValidation, provider.MaxDescriptionLen)
	}

	if _, err := s.providers.GetByEmail(ctx, req.Email); err == nil {
		return provider.Provider{}, ErrDuplicateEmail
	} else if !errors.Is(err, provider.ErrNotFound) {
		return provider.Provider{}, fmt.Errorf("auth: check existing provider: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return provider.Provider{}, err
	}

	created, err := s.providers.Create(ctx, provider.Provider{
		ID:           s.idGenerator(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Postcode:     req.Postcode,
		Expertise:    req.Expertise,
		Description:  req.Description,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, provider.ErrDuplicateEmail) {
			return provider.Provider{}, ErrDuplicateEmail
		}
		return provider.Provider{}, err
	}

	s.sendWelcome(ctx, created.Email, created.FirstName)

	return created, nil
}

// Login authenticates against either collection and returns a bearer
// token. Unknown email and wrong password produce the same error.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	email := account.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	acct, err := s.resolver.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if !VerifyPassword(req.Password, acct.PasswordDigest()) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(acct.AccountID(), acct.AccountKind())
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: issue token: %w", err)
	}

	return LoginResult{Token: token, Kind: acct.AccountKind(), Account: acct}, nil
}

// ForgotPassword stores a fresh reset token on the matching account and
// emails a reset link. Unlike the welcome mail, a delivery failure here is
// surfaced to the caller: without the email the flow is dead.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	acct, err := s.resolver.FindByEmail(ctx, account.NormalizeEmail(email))
	if err != nil {
		return err
	}

	token, err := s.newResetToken()
	if err != nil {
		return err
	}
	expiry := s.now().Add(ResetTokenTTL)

	switch a := acct.(type) {
	case user.User:
		a.ResetToken = &token
		a.ResetTokenExpiry = &expiry
		if _, err := s.users.Update(ctx, a); err != nil {
			return fmt.Errorf("auth: store reset token: %w", err)
		}
	case provider.Provider:
		a.ResetToken = &token
		a.ResetTokenExpiry = &expiry
		if _, err := s.providers.Update(ctx, a); err != nil {
			return fmt.Errorf("auth: store reset token: %w", err)
		}
	default:
		return fmt.Errorf("auth: unexpected account type %T", acct)
	}

	if s.mail != nil {
		resetURL := fmt.Sprintf("%s/reset-password?token=%s&kind=%s", s.resetBaseURL, token, acct.AccountKind())
		if err := s.mail.SendPasswordReset(ctx, acct.AccountEmail(), resetURL); err != nil {
			return fmt.Errorf("auth: send reset email: %w", err)
		}
	}

	return nil
}

// ResetPassword exchanges a valid reset token for a new password. The token
// fields are cleared unconditionally on success, so a token never matches
// twice.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: unknown account kind %q", ErrValidation, req.Kind)
	}
	if req.Token == "" {
		return ErrInvalidResetToken
	}
	if len(req.NewPassword) < 8 {
		return ErrWeakPassword
	}

	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	now := s.now()

	switch req.Kind {
	case account.KindUser:
		u, err := s.users.GetByResetToken(ctx, req.Token, now)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				return ErrInvalidResetToken
			}
			return fmt.Errorf("auth: reset lookup: %w", err)
		}
		u.PasswordHash = hash
		u.ResetToken = nil
		u.ResetTokenExpiry = nil
		if _, err := s.users.Update(ctx, u); err != nil {
			return fmt.Errorf("auth: apply reset: %w", err)
		}
	case account.KindProvider:
		p, err := s.providers.GetByResetToken(ctx, req.Token, now)
		if err != nil {
			if errors.Is(err, provider.ErrNotFound) {
				return ErrInvalidResetToken
			}
			return fmt.Errorf("auth: reset lookup: %w", err)
		}
		p.PasswordHash = hash
		p.ResetToken = nil
		p.ResetTokenExpiry = nil
		if _, err := s.providers.Update(ctx, p); err != nil {
			return fmt.Errorf("auth: apply reset: %w", err)
		}
	}

	return nil
}

func (s *Service) sendWelcome(ctx context.Context, email, name string) {
	if s.mail == nil {
		return
	}
	if err := s.mail.SendWelcome(ctx, email, name); err != nil {
		s.logger.Warn("welcome email delivery failed", "email", email, "error", err)
	}
}

func validateIdentity(firstName, lastName, email string) error {
	if firstName == "" {
		return fmt.Errorf("%w: first name is required", ErrValidation)
	}
	if lastName == "" {
		return fmt.Errorf("%w: last name is required", ErrValidation)
	}
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	return nil
}
