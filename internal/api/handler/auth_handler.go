package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/internal/dto"
	"github.com/Adoulaziztalla/SOGAS-V3/internal/service"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// AuthHandler authentication endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates the AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrIdentifiantsInvalides):
			response.Error(c, http.StatusUnauthorized, 11001, err.Error())
		case errors.Is(err, service.ErrCompteDesactive):
			response.Forbidden(c, 11002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Refresh
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRefreshTokenInvalide):
			response.Error(c, http.StatusUnauthorized, 11003, err.Error())
		case errors.Is(err, service.ErrCompteDesactive):
			response.Forbidden(c, 11002, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented access token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := MustGetClaims(c)
	if !ok {
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// Me returns the authenticated account.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	user, err := h.authSvc.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUtilisateurIntrouvable) {
			response.NotFound(c, 11004, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, user)
}

// ChangePassword
// PUT /api/v1/auth/password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "paramètres invalides")
		return
	}

	if err := h.authSvc.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrAncienMotDePasseIncorrect):
			response.BadRequest(c, 11005, err.Error())
		case errors.Is(err, service.ErrUtilisateurIntrouvable):
			response.NotFound(c, 11004, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
