package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestTokenManager_GenerateAndParse(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	token, expiresAt, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if token == "" {
		t.Fatal("Generate returned empty token")
	}
	if until := time.Until(expiresAt); until < 59*time.Minute || until > time.Hour {
		t.Errorf("expiry %v not about an hour away", expiresAt)
	}

	parsed, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed != userID {
		t.Errorf("Parse returned user %s, want %s", parsed, userID)
	}
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager("test-secret", -time.Minute)

	token, _, err := m.Generate(uuid.New())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.Parse(token); err == nil {
		t.Error("Parse accepted an expired token")
	}
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("issuer-secret", time.Hour)
	verifier := NewTokenManager("other-secret", time.Hour)

	token, _, err := issuer.Generate(uuid.New())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Error("Parse accepted a token signed with a different secret")
	}
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.e30."} {
		if _, err := m.Parse(token); err == nil {
			t.Errorf("Parse accepted malformed token %q", token)
		}
	}
}

func TestTokenManager_RejectsUnsignedAlgorithm(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	// {"alg":"none","typ":"JWT"} . {} . <empty signature>
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.e30."
	if _, err := m.Parse(unsigned); err == nil {
		t.Error("Parse accepted an alg=none token")
	}
}

func TestTokenManager_NilSubjectRoundTrips(t *testing.T) {
	m := NewTokenManager("test-secret", time.Hour)

	token, _, err := m.Generate(uuid.Nil)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed != uuid.Nil {
		t.Errorf("Parse returned %s, want nil UUID", parsed)
	}
}
