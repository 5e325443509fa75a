package usecase

import (
	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
	"auth-srv/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.PostgresRepository
}

// New - Factory function
func New(l log.Logger, repo repository.PostgresRepository) user.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
