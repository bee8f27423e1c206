package token

import (
	"testing"
	"time"

	"plinko_backend/internal/model"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	user := &model.User{ID: 1, UID: "uid-1"}

	tokenStr, err := GenerateAccessToken(user, secret, time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	claims, err := VerifyToken(tokenStr, secret)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}

	if claims.ID != "uid-1" {
		t.Errorf("claims.ID = %q, want uid-1", claims.ID)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{UID: "uid-1"}, []byte("secret-a"), time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := VerifyToken(tokenStr, []byte("secret-b")); err == nil {
		t.Fatal("VerifyToken() with wrong secret succeeded, want error")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	tokenStr, err := GenerateAccessToken(&model.User{UID: "uid-1"}, []byte("secret"), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := VerifyToken(tokenStr, []byte("secret")); err == nil {
		t.Fatal("VerifyToken() with expired token succeeded, want error")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateRefreshToken() returned empty token")
	}

	hash := HashRefreshToken(token)
	if !VerifyRefreshToken(token, hash) {
		t.Error("VerifyRefreshToken() = false for matching token")
	}
	if VerifyRefreshToken("another-token", hash) {
		t.Error("VerifyRefreshToken() = true for wrong token")
	}
}

func TestRefreshTokensUnique(t *testing.T) {
	a, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}
	b, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	if a == b {
		t.Error("two generated refresh tokens are identical")
	}
}
