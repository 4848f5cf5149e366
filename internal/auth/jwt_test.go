package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTSignAndVerify(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	token, err := j.Sign(42)
	if err != nil {
		t.Fatalf("expected token, got error: %v", err)
	}

	userID, err := j.Verify(token)
	if err != nil {
		t.Fatalf("expected valid token, got error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestJWTVerifyWrongSecret(t *testing.T) {
	token, err := NewJWT("secret-a", time.Hour).Sign(1)
	if err != nil {
		t.Fatalf("expected token, got error: %v", err)
	}

	if _, err := NewJWT("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("expected verification to fail with wrong secret")
	}
}

func TestJWTVerifyExpired(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	claims := jwt.MapClaims{
		"sub": int64(7),
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("expected token, got error: %v", err)
	}

	if _, err := j.Verify(token); err == nil {
		t.Fatal("expected verification to fail for expired token")
	}
}

func TestJWTVerifyGarbage(t *testing.T) {
	j := NewJWT("test-secret", time.Hour)

	if _, err := j.Verify("not-a-token"); err == nil {
		t.Fatal("expected verification to fail for malformed token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("expected hash, got error: %v", err)
	}

	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong password") {
		t.Fatal("expected mismatched password to fail")
	}
}
