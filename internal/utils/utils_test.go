package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter22", 4) // min cost keeps the test fast
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !VerifyPassword(hash, "hunter22") {
		t.Error("correct password must verify")
	}
	if VerifyPassword(hash, "hunter23") {
		t.Error("wrong password must not verify")
	}
}

func TestNewAccessTokenRoundTrip(t *testing.T) {
	const secret = "test-secret"
	at, err := NewAccessToken(secret, 42, "venue_admin", 15)
	if err != nil {
		t.Fatalf("NewAccessToken: %v", err)
	}
	if time.Until(at.Exp) <= 0 {
		t.Fatal("token must expire in the future")
	}

	tok, err := jwt.Parse(at.Token, func(tk *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("parse: %v (valid=%v)", err, tok != nil && tok.Valid)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if sub, _ := claims["sub"].(float64); uint64(sub) != 42 {
		t.Errorf("sub = %v, want 42", claims["sub"])
	}
	if role, _ := claims["role"].(string); role != "venue_admin" {
		t.Errorf("role = %v, want venue_admin", claims["role"])
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	rt, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if len(rt.Raw) != 96 {
		t.Errorf("raw length = %d, want 96", len(rt.Raw))
	}
	h1 := HashRefreshRaw(rt.Raw)
	h2 := HashRefreshRaw(rt.Raw)
	if h1 != h2 {
		t.Error("hash must be deterministic")
	}
	if h1 == rt.Raw {
		t.Error("hash must not equal the raw token")
	}

	other, err := NewRefreshToken(30)
	if err != nil {
		t.Fatalf("NewRefreshToken: %v", err)
	}
	if other.Raw == rt.Raw {
		t.Error("two tokens must not collide")
	}
}
