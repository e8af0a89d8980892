// Package ratelimit provides a Redis-backed fixed-window rate limiter for the
// auth endpoints.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Limiter counts requests per key in fixed windows backed by Redis.
// State lives in Redis so the limit holds across replicas.
type Limiter struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
}

// NewLimiter creates a Limiter allowing up to limit requests per window.
func NewLimiter(client *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &Limiter{
		client: client,
		prefix: prefix,
		limit:  int64(limit),
		window: window,
	}
}

// key returns the Redis key for a caller.
func (l *Limiter) key(k string) string {
	return fmt.Sprintf("%s:%s", l.prefix, k)
}

// Allow reports whether the caller identified by key is within the limit.
// The first request of a window sets the key's TTL; subsequent requests only
// increment, so the window never slides.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key)
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, err
		}
	}
	return n <= l.limit, nil
}

// Middleware returns a Gin middleware that limits requests per client IP and
// route. A nil limiter (Redis not configured) disables limiting entirely, and
// Redis errors fail open: an unavailable limiter must not take down sign-in.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil {
			c.Next()
			return
		}

		key := c.ClientIP() + ":" + c.FullPath()
		allowed, err := l.Allow(c.Request.Context(), key)
		if err != nil {
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if !allowed {
			slog.Warn("rate limit exceeded", "remote_addr", c.ClientIP(), "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
