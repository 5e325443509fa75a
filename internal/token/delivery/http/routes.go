package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	jwt := r.Group("/api/jwt")
	{
		jwt.POST("/token", mw.Auth(), h.Issue)
		jwt.POST("/verify", h.Verify)
		jwt.POST("/refresh", h.Refresh)
	}
}
