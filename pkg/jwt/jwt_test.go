package jwt

import (
	"testing"
	"time"

	"hospital-management-api/config"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	s := newTestService()

	token, tokenID, err := s.GenerateAccessToken("u1", "admin@hospital.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}
	if tokenID == "" {
		t.Fatal("empty token id")
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("UserID = %q, want u1", claims.UserID)
	}
	if claims.Email != "admin@hospital.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q", claims.Role)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %q, want %q", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenType(t *testing.T) {
	s := newTestService()

	token, _, err := s.GenerateRefreshToken("u1", "admin@hospital.com", "admin")
	if err != nil {
		t.Fatalf("GenerateRefreshToken() error = %v", err)
	}

	claims, err := s.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %q, want refresh", claims.TokenType)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService().GenerateAccessToken("u1", "admin@hospital.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	other := NewJWTService(config.JWTConfig{Secret: "different-secret", AccessExpiry: time.Minute})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted token signed with another secret")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	s := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := s.GenerateAccessToken("u1", "admin@hospital.com", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := s.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted expired token")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if _, err := newTestService().ValidateToken("not.a.token"); err == nil {
		t.Error("ValidateToken() accepted garbage input")
	}
}
