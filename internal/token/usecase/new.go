package usecase

import (
	"time"

	"auth-srv/internal/audit"
	"auth-srv/internal/token"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	jwtManager jwt.IManager
	auditUC    audit.UseCase
	cfg        token.Config

	now func() time.Time
}

// New - Factory function
func New(
	l log.Logger,
	jwtManager jwt.IManager,
	auditUC audit.UseCase,
	cfg token.Config,
) token.UseCase {
	return &implUseCase{
		l:          l,
		jwtManager: jwtManager,
		auditUC:    auditUC,
		cfg:        cfg,
		now:        time.Now,
	}
}
