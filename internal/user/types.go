package user

import "auth-srv/internal/model"

type DetailOutput struct {
	User model.User
}
