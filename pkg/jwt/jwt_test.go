package jwt

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Adoulaziztalla/SOGAS-V3/config"
)

func newTestManager(accessTTL time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:       "secret-de-test-0123456789",
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: 24 * time.Hour,
	})
}

func TestManager_AllerRetour(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)

	token, err := mgr.GenerateAccessToken("user-1", "rh@sogas.sn", "rh")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "rh@sogas.sn" || claims.Role != "rh" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, attendu access", claims.TokenType)
	}
	if claims.Issuer != "sogas-hr" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("jti manquant")
	}
}

func TestManager_TypeRefresh(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)

	token, err := mgr.GenerateRefreshToken("user-1", "rh@sogas.sn", "rh")
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %q, attendu refresh", claims.TokenType)
	}
}

func TestManager_TokenExpire(t *testing.T) {
	mgr := newTestManager(-time.Minute)

	token, err := mgr.GenerateAccessToken("user-1", "rh@sogas.sn", "rh")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := mgr.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, attendu ErrTokenExpired", err)
	}
}

func TestManager_TokenAltere(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)

	token, err := mgr.GenerateAccessToken("user-1", "rh@sogas.sn", "rh")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	altere := parts[0] + "." + parts[1] + "." + string(sig)
	if _, err := mgr.ParseToken(altere); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, attendu ErrTokenInvalid", err)
	}
}

func TestManager_MauvaisSecret(t *testing.T) {
	mgr := newTestManager(15 * time.Minute)
	autre := NewManager(&config.AuthConfig{
		JWTSecret:       "un-autre-secret-9876543210",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	})

	token, err := mgr.GenerateAccessToken("user-1", "rh@sogas.sn", "rh")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}
	if _, err := autre.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("err = %v, attendu ErrTokenInvalid", err)
	}
}
