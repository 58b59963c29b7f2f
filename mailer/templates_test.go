package mailer

import (
	"strings"
	"testing"
)

func TestRenderWelcome(t *testing.T) {
	body, err := renderWelcome("Alice")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(body, "Hello Alice,") {
		t.Fatalf("expected greeting with the account name, got:\n%s", body)
	}
	if !strings.Contains(body, "Welcome to Repairo") {
		t.Fatal("expected the welcome heading")
	}
}

func TestRenderWelcome_EscapesName(t *testing.T) {
	body, err := renderWelcome(`<script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatal("account name must be HTML-escaped")
	}
}

func TestRenderReset(t *testing.T) {
	const url = "https://repairo.example.com/reset-password?token=abc123&kind=user"

	body, err := renderReset(url)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(body, `href="https://repairo.example.com/reset-password?token=abc123&amp;kind=user"`) {
		t.Fatalf("expected the reset link in the body, got:\n%s", body)
	}
	if !strings.Contains(body, "valid for one hour") {
		t.Fatal("expected the expiry note")
	}
}
