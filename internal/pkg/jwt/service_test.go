package jwt

import (
	"errors"
	"testing"
	"time"

	"jobghar/internal/domain/user"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	tok, err := svc.GenerateToken(42, "seeker@example.com", user.RoleSeeker)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "seeker@example.com" {
		t.Fatalf("unexpected email: %q", claims.Email)
	}
	if claims.Role != user.RoleSeeker {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)

	issued := time.Now().Add(-2 * time.Hour)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateToken(1, "a@b.com", user.RoleEmployer)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	tok, err := NewHMACService("secret-a", time.Hour).GenerateToken(1, "a@b.com", user.RoleSeeker)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := NewHMACService("secret-b", time.Hour).ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
