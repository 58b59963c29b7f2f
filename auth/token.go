package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mansoorhotak/repairo-user-management-api/account"
)

// DefaultTokenTTL is the bearer-token lifetime used when no TTL is
// configured.
const DefaultTokenTTL = 24 * time.Hour

var (
	// ErrTokenExpired signals a token past its expiry.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenMalformed signals a token that does not parse.
	ErrTokenMalformed = errors.New("auth: token malformed")
	// ErrTokenSignature signals a token signed with the wrong secret.
	ErrTokenSignature = errors.New("auth: token signature invalid")
	// ErrTokenInvalid signals any other verification failure.
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// Claims is the verified content of a bearer token.
type Claims struct {
	AccountID string
	Kind      account.Kind
}

// TokenIssuer creates and verifies signed, time-limited bearer tokens.
// Tokens are stateless; rotating the secret invalidates everything
// outstanding.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer builds an issuer around a process-wide signing secret.
// A zero ttl selects DefaultTokenTTL.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the account identifier and kind.
func (t *TokenIssuer) Issue(accountID string, kind account.Kind) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"account_id": accountID,
		"kind":       string(kind),
		"exp":        now.Add(t.ttl).Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}

	return signed, nil
}

// Verify validates a token and returns its claims. Failures are classified
// as expired, malformed, or signature errors.
func (t *TokenIssuer) Verify(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrTokenSignature
		default:
			return Claims{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Claims{}, ErrTokenInvalid
	}

	accountID, ok := claims["account_id"].(string)
	if !ok || accountID == "" {
		return Claims{}, fmt.Errorf("%w: missing account_id", ErrTokenInvalid)
	}
	kindStr, ok := claims["kind"].(string)
	if !ok {
		return Claims{}, fmt.Errorf("%w: missing kind", ErrTokenInvalid)
	}
	kind := account.Kind(kindStr)
	if !kind.IsValid() {
		return Claims{}, fmt.Errorf("%w: unknown kind %q", ErrTokenInvalid, kindStr)
	}

	return Claims{AccountID: accountID, Kind: kind}, nil
}
