package usecase

import (
	"auth-srv/internal/audit"
	"auth-srv/internal/auth"
	"auth-srv/internal/user"
	"auth-srv/pkg/encrypter"
	"auth-srv/pkg/log"
	"auth-srv/pkg/redis"
)

type implUseCase struct {
	l         log.Logger
	userUC    user.UseCase
	redis     redis.IRedis
	encrypter encrypter.Encrypter
	auditUC   audit.UseCase
	cfg       auth.Config
}

// New - Factory function
func New(
	l log.Logger,
	userUC user.UseCase,
	redis redis.IRedis,
	encrypter encrypter.Encrypter,
	auditUC audit.UseCase,
	cfg auth.Config,
) auth.UseCase {
	return &implUseCase{
		l:         l,
		userUC:    userUC,
		redis:     redis,
		encrypter: encrypter,
		auditUC:   auditUC,
		cfg:       cfg,
	}
}
