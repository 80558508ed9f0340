package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/pkg/jwt"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/redis"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// JWTAuth extracts and verifies the access token from
// Authorization: Bearer <token>, rejects revoked tokens and injects
// the actor identity into the context. rdb may be nil; revocation
// checking is then skipped.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "en-tête d'authentification manquant")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, 10002, "en-tête d'authentification invalide")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Forbidden(c, 10002, "token invalide ou expiré")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Forbidden(c, 10002, "type de token invalide")
			c.Abort()
			return
		}

		if rdb != nil {
			revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && revoked {
				response.Forbidden(c, 10002, "token révoqué")
				c.Abort()
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Set("claims", claims)

		c.Next()
	}
}

// RoleAuth allows only the listed roles past.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, 10002, "non authentifié")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, 10003, "accès refusé")
		c.Abort()
	}
}
