package jwt

import (
	"testing"
	"time"

	"github.com/akhileshroy86/healthcare-backend/config"

	"github.com/google/uuid"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestService()
	userID := uuid.New()

	token, tokenID, err := svc.GenerateAccessToken(userID, "doctor@clinic.test", 2)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if tokenID == "" {
		t.Fatal("expected a non-empty token ID")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "doctor@clinic.test" {
		t.Errorf("Email = %s, want doctor@clinic.test", claims.Email)
	}
	if claims.RoleID != 2 {
		t.Errorf("RoleID = %d, want 2", claims.RoleID)
	}
	if claims.TokenType != AccessToken {
		t.Errorf("TokenType = %s, want %s", claims.TokenType, AccessToken)
	}
	if claims.TokenID != tokenID {
		t.Errorf("TokenID = %s, want %s", claims.TokenID, tokenID)
	}
}

func TestRefreshTokenCarriesRefreshType(t *testing.T) {
	svc := newTestService()

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "patient@clinic.test", 3)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.TokenType != RefreshToken {
		t.Errorf("TokenType = %s, want %s", claims.TokenType, RefreshToken)
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := newTestService()
	other := NewJWTService(config.JWTConfig{
		Secret:        "another-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "admin@clinic.test", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("expected validation to fail with a different secret")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "admin@clinic.test", 1)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService()
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}
