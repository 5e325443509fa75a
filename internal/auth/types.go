package auth

import (
	"time"

	"auth-srv/internal/model"
)

// Config holds session settings.
type Config struct {
	SessionTTL time.Duration
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	SessionID string
	ExpiresIn int64
	User      model.User
}
