package token

import (
	"time"

	"auth-srv/internal/model"
)

const (
	// TokenType is the bearer scheme name returned with issued tokens.
	TokenType = "Bearer"
)

// Config holds token lifecycle settings.
type Config struct {
	// RefreshWindow is how close to expiry a token must be before
	// a refresh is accepted.
	RefreshWindow time.Duration
}

type VerifyInput struct {
	Token string
}

type RefreshInput struct {
	Token string
}

type IssueOutput struct {
	Token     string
	ExpiresIn int64
	User      model.Scope
}

type VerifyOutput struct {
	Claims    TokenClaims
	ExpiresAt time.Time
}

type RefreshOutput struct {
	Token     string
	ExpiresIn int64
	User      model.Scope
}

// TokenClaims is the verified token payload surfaced to callers.
type TokenClaims struct {
	Issuer    string
	Audience  string
	IssuedAt  int64
	ExpiresAt int64
	Subject   string
	UserID    int64
	Email     string
	Name      string
}
