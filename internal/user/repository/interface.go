package repository

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	GetUserByID(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}
