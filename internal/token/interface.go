package token

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Issue(ctx context.Context, sc model.Scope) (IssueOutput, error)
	Verify(ctx context.Context, input VerifyInput) (VerifyOutput, error)
	Refresh(ctx context.Context, input RefreshInput) (RefreshOutput, error)
}
