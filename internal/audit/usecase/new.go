package usecase

import (
	"auth-srv/internal/audit"
	"auth-srv/internal/audit/repository"
	"auth-srv/pkg/kafka"
	"auth-srv/pkg/log"
)

type implUseCase struct {
	l        log.Logger
	repo     repository.PostgresRepository
	producer kafka.IProducer
}

// New - Factory function. Producer may be nil when event streaming is
// disabled; recording then only hits the database.
func New(l log.Logger, repo repository.PostgresRepository, producer kafka.IProducer) audit.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		producer: producer,
	}
}
