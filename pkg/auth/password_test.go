package auth

import (
	"errors"
	"testing"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("opensesame")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "opensesame" {
		t.Fatalf("hash must not equal the plaintext password")
	}
	if !CheckPassword("opensesame", hash) {
		t.Fatalf("expected matching password to verify")
	}
	if CheckPassword("OPENSESAME", hash) {
		t.Fatalf("password comparison must be case-sensitive")
	}
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("opensesame")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("opensesame")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatalf("expected salted hashes to differ")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
	if err := ValidatePassword("longenough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
