package discord

import (
	"context"
	"errors"
	"net/http"
	"time"

	"auth-srv/pkg/log"
)

var errWebhookRequired = errors.New("discord: webhook id and token are required")

// IDiscord sends operational messages to a Discord webhook.
// Implementations are safe for concurrent use.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	SendInfo(ctx context.Context, message string) error
	GetWebhookURL() string
	Close() error
}

// New creates a new Discord webhook client. Logger can be nil; retry
// logging is skipped if not provided.
func New(l log.Logger, id, token string) (IDiscord, error) {
	if id == "" || token == "" {
		return nil, errWebhookRequired
	}
	cfg := Config{
		Timeout:    DefaultTimeout,
		RetryCount: DefaultRetryCount,
		RetryDelay: DefaultRetryDelay,
		Username:   DefaultUsername,
	}
	client := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     30 * time.Second,
		},
	}
	return &discordImpl{
		l:       l,
		webhook: &webhookInfo{id: id, token: token},
		config:  cfg,
		client:  client,
	}, nil
}
