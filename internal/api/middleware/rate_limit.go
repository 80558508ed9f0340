package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Adoulaziztalla/SOGAS-V3/pkg/redis"
	"github.com/Adoulaziztalla/SOGAS-V3/pkg/response"
)

// RateLimit per-IP per-route rate limiting backed by Redis. A nil rdb
// or a Redis failure lets the request through, matching the JWTAuth
// degradation policy.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("rate_limit:%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := rdb.CheckRateLimit(c.Request.Context(), key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.Error(c, http.StatusTooManyRequests, 10004, "trop de requêtes, réessayez plus tard")
			c.Abort()
			return
		}

		c.Next()
	}
}
