package token

import (
	"testing"
	"time"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", 60)

	signed, expiresAt, err := m.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if signed == "" {
		t.Fatal("expected a token")
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > 61*time.Minute {
		t.Fatalf("unexpected expiry window: %v", until)
	}

	id, err := m.Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if id != 42 {
		t.Fatalf("expected subject 42, got %d", id)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	signed, _, err := NewManager("secret-a", 60).Generate(7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := NewManager("secret-b", 60).Parse(signed); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestParse_Expired(t *testing.T) {
	m := &Manager{secret: []byte("test-secret"), ttl: -time.Minute}

	signed, _, err := m.Generate(7)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := m.Parse(signed); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParse_Garbage(t *testing.T) {
	m := NewManager("test-secret", 60)
	for _, raw := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		if _, err := m.Parse(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
