package user

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope) (DetailOutput, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
}
