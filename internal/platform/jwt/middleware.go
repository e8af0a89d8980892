package jwtmw

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/domain/entity"
	"github.com/Fibidy-Developer/fibidy-blog-app/internal/feature/auth/usecase"
)

// ContextIdentity is the gin context key under which the resolved
// identity projection is stored for downstream handlers.
const ContextIdentity = "authIdentity"

// UserResolver resolves a verified token subject against the user store.
// Following Go convention: the interface is defined by the consumer (middleware),
// not the provider (usecase).
type UserResolver interface {
	// ResolveUser returns the identity projection for the given user ID,
	// or usecase.ErrUserNotFound if no such user exists.
	ResolveUser(ctx context.Context, id uint) (*entity.Identity, error)
}

// AuthRequired returns a Gin middleware that gates protected routes.
// A request passes only when it carries a bearer credential whose signature
// and expiry verify against the injected secret, and whose subject resolves
// to an existing user. The resolved identity projection is stored in the
// context; the password hash never is.
func AuthRequired(secret string, users UserResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Get Authorization header
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			// Server misconfiguration (empty signing secret)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		// 2. Parse and verify JWT signature
		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Check signing algorithm (only HMAC allowed)
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// 3. Resolve the subject against the user store
		identity, err := users.ResolveUser(c.Request.Context(), uint(sub))
		if err != nil {
			if errors.Is(err, usecase.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown subject"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Set(ContextIdentity, identity)
		c.Next()
	}
}

// IdentityFrom extracts the resolved identity from the gin context.
// It returns nil if the middleware has not run on this request.
func IdentityFrom(c *gin.Context) *entity.Identity {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return nil
	}
	identity, ok := v.(*entity.Identity)
	if !ok {
		return nil
	}
	return identity
}
