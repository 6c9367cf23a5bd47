package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barisbulutdemir/raporermak/pkg/redis"
	"github.com/barisbulutdemir/raporermak/pkg/response"
)

// RateLimit enforces a per-IP, per-route request budget backed by Redis.
// A nil client or a Redis failure lets the request through.
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
			response.Error(c, http.StatusTooManyRequests, 10004, "çok fazla istek, lütfen daha sonra tekrar deneyin")
			c.Abort()
			return
		}

		c.Next()
	}
}
