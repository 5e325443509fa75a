package middleware

import (
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// ClientIP stores the caller's IP address in the request context so
// audit records can carry it.
func (m Middleware) ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := scope.SetClientIPToContext(c.Request.Context(), c.ClientIP())
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
