package security

import (
	"strings"
	"testing"
	"time"

	"nexthire/internal/common"
)

func TestJWTProviderGenerateAndParse(t *testing.T) {
	provider := NewJWTProvider("secret")
	userID := common.NewUUID()

	token, expiresAt, err := provider.Generate(userID, "recruiter", time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if expiresAt.Before(time.Now().UTC()) {
		t.Fatalf("expiry in the past: %v", expiresAt)
	}

	claims, err := provider.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.UserID != string(userID) {
		t.Fatalf("UserID = %q, want %q", claims.UserID, userID)
	}
	if claims.Role != "recruiter" {
		t.Fatalf("Role = %q, want recruiter", claims.Role)
	}
}

func TestJWTProviderParse_RejectsTampering(t *testing.T) {
	provider := NewJWTProvider("secret")
	token, _, err := provider.Generate(common.NewUUID(), "jobseeker", time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := provider.Parse(token + "x"); err == nil {
		t.Fatal("expected error for tampered signature")
	}
	if _, err := provider.Parse("not.a.token.at.all"); err == nil {
		t.Fatal("expected error for malformed token")
	}

	other := NewJWTProvider("different-secret")
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestJWTProviderParse_RejectsExpired(t *testing.T) {
	provider := NewJWTProvider("secret")
	token, _, err := provider.Generate(common.NewUUID(), "jobseeker", -time.Minute)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	_, err = provider.Parse(token)
	if err == nil || !strings.Contains(err.Error(), "expired") {
		t.Fatalf("expected expiry error, got %v", err)
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("supersecret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "supersecret" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "supersecret") {
		t.Fatal("CheckPassword rejected the right password")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("CheckPassword accepted the wrong password")
	}
}
