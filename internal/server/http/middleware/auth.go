package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/pkondrashkov/accountd/internal/pkg/auth"
)

// UserIDContextKey is a gin context key for authenticated user identifier.
const UserIDContextKey = "userID"

// TokenAuthenticator resolves a presented token key to a user identifier.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, key string) (int64, error)
}

// TokenAuth ensures the request carries a known token before the handler runs.
func TokenAuth(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := extractKey(c)
		if key == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserIDContextKey, userID)
		c.Next()
	}
}

// extractKey accepts both the "Token" scheme and the plain "Bearer" scheme.
func extractKey(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	lower := strings.ToLower(authHeader)
	switch {
	case strings.HasPrefix(lower, "token "):
		return strings.TrimSpace(authHeader[6:])
	case strings.HasPrefix(lower, "bearer "):
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
