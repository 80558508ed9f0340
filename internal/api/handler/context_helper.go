package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/pkg/jwt"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// MustGetUserID extracts the authenticated actor from the context. On a
// missing or malformed value it writes a 401 and returns ok=false; the
// caller must return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "non authentifié")
		return "", false
	}
	return s, true
}

// MustGetClaims extracts the full token claims injected by JWTAuth.
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "non authentifié")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "non authentifié")
		return nil, false
	}
	return claims, true
}
