package di

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/platform/ratelimit"
)

const (
	// authRateLimit is the number of auth-endpoint requests allowed per
	// client IP and route within each window.
	authRateLimit = 10

	// authRateWindow is the fixed window length.
	authRateWindow = time.Minute
)

// NewAuthRateLimiter creates the rate limiter for the auth endpoints.
// It returns nil when Redis is unavailable; the middleware treats a nil
// limiter as disabled.
func NewAuthRateLimiter(rdb *redis.Client) *ratelimit.Limiter {
	if rdb == nil {
		return nil
	}
	return ratelimit.NewLimiter(rdb, "ratelimit:auth", authRateLimit, authRateWindow)
}
