package http

import (
	"auth-srv/internal/auth"
	"auth-srv/internal/middleware"
	"auth-srv/pkg/discord"
	"auth-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho auth HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      auth.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc auth.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
