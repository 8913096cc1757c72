package crypto

import (
	"strings"
	"testing"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if hash == "pw123" {
		t.Fatal("hash must not equal the plaintext password")
	}
	if !VerifyPassword("pw123", hash) {
		t.Error("VerifyPassword() = false for the correct password")
	}
}

func TestVerifyPasswordWrongPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if VerifyPassword("pw124", hash) {
		t.Error("VerifyPassword() = true for a wrong password")
	}
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	if VerifyPassword("pw123", "not-a-bcrypt-hash") {
		t.Error("VerifyPassword() = true for a malformed hash")
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	h1, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	h2, err := HashPassword("pw123")
	if err != nil {
		t.Fatalf("HashPassword() unexpected error: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ (per-hash salt)")
	}
	if !strings.HasPrefix(h1, "$2") {
		t.Errorf("unexpected hash format: %s", h1)
	}
}
