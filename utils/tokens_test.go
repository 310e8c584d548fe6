package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNewTransactionID(t *testing.T) {
	now := time.UnixMilli(1748736000000)

	id := NewTransactionID(now)
	if !strings.HasPrefix(id, "TXN-1748736000000-") {
		t.Fatalf("id = %q, want TXN-<millis>-<fragment> with millis 1748736000000", id)
	}

	// Same millisecond must still produce distinct identifiers.
	if other := NewTransactionID(now); other == id {
		t.Fatalf("two ids for the same instant collided: %q", id)
	}
}

func TestEnvOrDefault(t *testing.T) {
	const key = "HOSTEL_TEST_ENV_OR_DEFAULT"

	if got := EnvOrDefault(key, "fallback"); got != "fallback" {
		t.Fatalf("unset var: got %q, want fallback", got)
	}

	t.Setenv(key, "  ")
	if got := EnvOrDefault(key, "fallback"); got != "fallback" {
		t.Fatalf("blank var: got %q, want fallback", got)
	}

	t.Setenv(key, "value")
	if got := EnvOrDefault(key, "fallback"); got != "value" {
		t.Fatalf("set var: got %q, want value", got)
	}
}

func TestGenerateSecureToken(t *testing.T) {
	tok, err := GenerateSecureToken(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tok) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars", len(tok))
	}

	if _, err := GenerateSecureToken(0); err == nil {
		t.Fatal("zero length must be rejected")
	}
}
