package middleware

import (
	"strings"

	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Auth resolves the session id from the Authorization header or the
// session cookie and attaches the scope to the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := m.extractSessionID(c)
		if sessionID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		sc, err := m.authUC.CurrentScope(ctx, sessionID)
		if err != nil {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		ctx = scope.SetScopeToContext(ctx, sc)
		ctx = scope.SetSessionIDToContext(ctx, sessionID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func (m Middleware) extractSessionID(c *gin.Context) string {
	// Priority 1: Authorization header, "Bearer <id>" or plain id
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if after, found := strings.CutPrefix(authHeader, "Bearer "); found {
			return after
		}
		return authHeader
	}

	// Priority 2: session cookie
	sessionID, err := c.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return sessionID
}
