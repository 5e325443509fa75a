package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api")
	{
		api.POST("/login", h.Login)
		api.POST("/logout", mw.Auth(), h.Logout)
	}
}
