package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"health-portal-server/internal/config"
	"health-portal-server/internal/session"
	"health-portal-server/internal/utils"
)

const sessionKey = "session"

// SessionMiddleware resolves the bearer session token to a live session.
// It identifies the caller only; nothing is gated on authentication state.
func SessionMiddleware(store *session.Store, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			utils.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(parts[1], cfg.SessionSecret)
		if err != nil {
			utils.Unauthorized(c, "Invalid token: "+err.Error())
			c.Abort()
			return
		}

		s, err := store.Get(claims.SessionID)
		if err != nil {
			utils.Unauthorized(c, "Session expired or unknown")
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// GetSessionFromContext returns the session set by SessionMiddleware.
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	s, ok := v.(*session.Session)
	return s, ok
}
