package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"log"
	"net/http"
	"time"
)

// RateLimitMiddleware applies a fixed-window per-IP limit, backed by redis so
// the count survives restarts and is shared between replicas. A nil client
// disables the limiter. Redis faults fail open: throttling is protection,
// not a correctness requirement.
func RateLimitMiddleware(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next()
			return
		}

		key := "ratelimit:" + c.FullPath() + ":" + c.ClientIP()
		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			log.Printf("rate limiter unavailable: %v\n", err)
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, window)
		}

		if count > int64(limit) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, try again later",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
