package middleware

import (
	"net/http" // HTTP status codes
	"time"     // Time durations

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

const (
	rateLimitPeriod = 1 * time.Minute // Window length
	rateLimitCount  = 5               // Allowed requests per window per IP
)

// RateLimiter throttles requests per client IP using a Redis counter.
// With no Redis client configured it lets everything through.
func RateLimiter(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil {
			c.Next() // Rate limiting disabled
			return
		}
		key := "rate_limit:" + c.ClientIP() // Counter key per client IP
		// Increment the counter, creating it at 1 if absent
		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			c.Next() // On Redis failure, let the request through
			return
		}
		// First hit in the window starts the expiry clock
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, rateLimitPeriod)
		}
		if count > rateLimitCount {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
