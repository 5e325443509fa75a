package http

import (
	"auth-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api")
	api.Use(mw.Auth())
	{
		api.GET("/audit-logs", h.List)
	}
}
