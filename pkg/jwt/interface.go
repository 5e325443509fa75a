package jwt

import (
	"fmt"
	"time"
)

// IManager defines the interface for token generation and verification.
// Implementations are stateless after construction and safe for concurrent use.
type IManager interface {
	// GenerateToken signs a new HS256 token for the given identity fields.
	GenerateToken(userID int64, email, name string) (string, error)
	// Verify parses and validates a token, returning its claims or one of
	// the package sentinel errors.
	Verify(tokenString string) (*Claims, error)
	// TTL returns the configured validity window.
	TTL() time.Duration
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("jwt: issuer is required")
	}
	if cfg.Audience == "" {
		return nil, fmt.Errorf("jwt: audience is required")
	}
	if cfg.TTL <= 0 {
		return nil, fmt.Errorf("jwt: ttl must be greater than 0")
	}

	now := cfg.TimeFunc
	if now == nil {
		now = time.Now
	}

	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.TTL,
		now:       now,
	}, nil
}
