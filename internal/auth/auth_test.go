package auth

import (
	"strings"
	"testing"
	"time"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3nha-forte")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3nha-forte" {
		t.Fatal("password stored in plaintext")
	}

	if !CheckPassword("s3nha-forte", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("senha-errada", hash) {
		t.Error("wrong password accepted")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.IssueToken("maria@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	email, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if email != "maria@example.com" {
		t.Errorf("subject = %q", email)
	}
}

func TestTokenRejectedWithWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).IssueToken("maria@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).ParseToken(token); err == nil {
		t.Error("token signed with another secret was accepted")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.IssueToken("maria@example.com")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := m.ParseToken(token); err == nil {
		t.Error("expired token accepted")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	for _, token := range []string{"", "abc", strings.Repeat("x.", 40)} {
		if _, err := m.ParseToken(token); err == nil {
			t.Errorf("garbage token %q accepted", token)
		}
	}
}
