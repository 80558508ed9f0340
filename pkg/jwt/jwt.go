package jwt

import (
	"errors"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Adoulaziztalla/SOGAS-V3/config"
)

var (
	ErrTokenExpired = errors.New("token expiré")
	ErrTokenInvalid = errors.New("token invalide")
)

// Claims carried by SOGAS tokens. UserID is the actor recorded as
// created_by / validateur on every write.
type Claims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"` // "access" | "refresh"
	jwtv5.RegisteredClaims
}

// Manager signs and verifies HS256 token pairs.
type Manager struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewManager builds a Manager from auth configuration.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret:          []byte(cfg.JWTSecret),
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
	}
}

// GenerateAccessToken issues a short-lived access token.
func (m *Manager) GenerateAccessToken(userID, email, role string) (string, error) {
	return m.generate(userID, email, role, "access", m.accessTokenTTL)
}

// GenerateRefreshToken issues a refresh token.
func (m *Manager) GenerateRefreshToken(userID, email, role string) (string, error) {
	return m.generate(userID, email, role, "refresh", m.refreshTokenTTL)
}

func (m *Manager) generate(userID, email, role, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(ttl)),
			Issuer:    "sogas-hr",
		},
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseToken verifies a token and returns its claims.
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
