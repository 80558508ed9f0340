package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Adoulaziztalla/SOGAS-V3/config"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/repository"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/jwt"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/redis"
)

var (
	ErrIdentifiantsInvalides     = errors.New("email ou mot de passe incorrect")
	ErrCompteDesactive           = errors.New("compte désactivé")
	ErrUtilisateurIntrouvable    = errors.New("utilisateur introuvable")
	ErrRefreshTokenInvalide      = errors.New("refresh token invalide")
	ErrAncienMotDePasseIncorrect = errors.New("ancien mot de passe incorrect")
)

// AuthService authentication and account operations.
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates the AuthService implementation.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentifiantsInvalides
		}
		s.logger.Error("recherche utilisateur échouée", zap.Error(err))
		return nil, err
	}

	if !user.Actif {
		return nil, ErrCompteDesactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrIdentifiantsInvalides
	}

	return s.issueTokenPair(user.UserID, user.Email, user.Role, user.Nom)
}

func (s *authService) Refresh(ctx context.Context, req *dto.RefreshRequest) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(req.RefreshToken)
	if err != nil {
		return nil, ErrRefreshTokenInvalide
	}
	if claims.TokenType != "refresh" {
		return nil, ErrRefreshTokenInvalide
	}

	if s.rdb != nil {
		revoked, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("consultation blacklist échouée", zap.Error(err))
		} else if revoked {
			return nil, ErrRefreshTokenInvalide
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRefreshTokenInvalide
		}
		return nil, err
	}
	if !user.Actif {
		return nil, ErrCompteDesactive
	}

	// rotate: the consumed refresh token is revoked
	if s.rdb != nil && claims.ExpiresAt != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			s.logger.Warn("révocation du refresh token échouée", zap.Error(err))
		}
	}

	return s.issueTokenPair(user.UserID, user.Email, user.Role, user.Nom)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil || claims.ExpiresAt == nil {
		return nil
	}
	return s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time))
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUtilisateurIntrouvable
		}
		return nil, err
	}
	return &dto.UserResponse{
		ID:    user.UserID,
		Nom:   user.Nom,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUtilisateurIntrouvable
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrAncienMotDePasseIncorrect
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hachage du mot de passe échoué", zap.Error(err))
		return err
	}

	user.PasswordHash = string(hash)
	return s.repo.User.Update(ctx, user)
}

func (s *authService) issueTokenPair(userID, email, role, nom string) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(userID, email, role)
	if err != nil {
		s.logger.Error("génération access token échouée", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(userID, email, role)
	if err != nil {
		s.logger.Error("génération refresh token échouée", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User: dto.UserResponse{
			ID:    userID,
			Nom:   nom,
			Email: email,
			Role:  role,
		},
	}, nil
}
