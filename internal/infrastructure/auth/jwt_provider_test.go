package auth

import (
	"errors"
	"testing"
	"time"

	"permitpro/internal/domain/entities"
)

func testUser() entities.User {
	return entities.User{ID: "user-1", Email: "jane@example.com", Role: entities.RoleAdmin}
}

func TestJWTProvider_TokenRoundTrip(t *testing.T) {
	p := NewJWTProvider("test-secret", time.Hour)

	token, err := p.IssueToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := p.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.UserID != "user-1" || id.Email != "jane@example.com" || id.Role != entities.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestJWTProvider_WrongSecret(t *testing.T) {
	issuer := NewJWTProvider("secret-a", time.Hour)
	verifier := NewJWTProvider("secret-b", time.Hour)

	token, err := issuer.IssueToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := verifier.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTProvider_ExpiredToken(t *testing.T) {
	p := NewJWTProvider("test-secret", -time.Minute)

	token, err := p.IssueToken(testUser())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := p.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTProvider_Garbage(t *testing.T) {
	p := NewJWTProvider("test-secret", time.Hour)
	if _, err := p.ValidateToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTProvider_Passwords(t *testing.T) {
	p := NewJWTProvider("test-secret", time.Hour)

	hash, err := p.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "hunter2" {
		t.Fatalf("expected hash, got plaintext")
	}
	if err := p.VerifyPassword(hash, "hunter2"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := p.VerifyPassword(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch error")
	}
}
