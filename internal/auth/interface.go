package auth

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, sessionID string) error
	// CurrentScope resolves a session id to the scope it was created for.
	CurrentScope(ctx context.Context, sessionID string) (model.Scope, error)
}
