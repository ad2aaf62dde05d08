package token

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	secret := "test-secret"
	tok, err := Generate(42, "abc123", "manager", secret, time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := Validate(tok, secret)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "manager" {
		t.Errorf("Role = %q, want manager", claims.Role)
	}
	if claims.Subject != "abc123" {
		t.Errorf("Subject = %q, want abc123", claims.Subject)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	tok, err := Generate(1, "x", "admin", "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := Validate(tok, "secret-b"); err != ErrInvalid {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}

func TestValidateExpired(t *testing.T) {
	tok, err := Generate(1, "x", "admin", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := Validate(tok, "secret"); err != ErrExpired {
		t.Fatalf("err = %v, want ErrExpired", err)
	}
}

func TestValidateGarbage(t *testing.T) {
	if _, err := Validate("not-a-token", "secret"); err != ErrInvalid {
		t.Fatalf("err = %v, want ErrInvalid", err)
	}
}
