package auth

import (
	"encoding/hex"
	"testing"
)

func TestNewResetToken(t *testing.T) {
	token, err := NewResetToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	raw, err := hex.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
	if len(raw) != resetTokenBytes {
		t.Fatalf("expected %d bytes of entropy, got %d", resetTokenBytes, len(raw))
	}

	other, err := NewResetToken()
	if err != nil {
		t.Fatalf("generate second: %v", err)
	}
	if token == other {
		t.Fatal("two generated tokens must not collide")
	}
}
