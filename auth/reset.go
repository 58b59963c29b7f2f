package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// ResetTokenTTL is the fixed validity window of a password-reset token.
const ResetTokenTTL = time.Hour

const resetTokenBytes = 32

// NewResetToken returns a hex-encoded 256-bit random secret. The token is
// stored verbatim on the account record and matched exactly at reset time.
func NewResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("auth: generate reset token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
