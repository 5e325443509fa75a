package usecase

import (
	"context"
	"errors"

	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/internal/user/repository"
)

// Detail - Lấy user record cho scope hiện tại
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (user.DetailOutput, error) {
	u, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.DetailOutput{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.Detail.GetUserByID: %v", err)
		return user.DetailOutput{}, err
	}

	return user.DetailOutput{User: u}, nil
}

// GetByEmail - Lấy user theo email
func (uc *implUseCase) GetByEmail(ctx context.Context, email string) (model.User, error) {
	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.GetByEmail.GetUserByEmail: %v", err)
		return model.User{}, err
	}

	return u, nil
}
