package middleware

import (
	"auth-srv/internal/auth"
	"auth-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	authUC     auth.UseCase
	cookieName string
}

func New(l log.Logger, authUC auth.UseCase, cookieName string) Middleware {
	return Middleware{
		l:          l,
		authUC:     authUC,
		cookieName: cookieName,
	}
}
