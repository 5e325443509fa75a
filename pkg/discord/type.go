package discord

import (
	"net/http"
	"time"

	"auth-srv/pkg/log"
)

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// DefaultTimeout is the HTTP timeout for webhook calls.
	DefaultTimeout = 10 * time.Second
	// DefaultRetryCount is how many times a failed webhook call is retried.
	DefaultRetryCount = 2
	// DefaultRetryDelay is the delay between retries.
	DefaultRetryDelay = time.Second
	// DefaultUsername is the webhook display name.
	DefaultUsername = "auth-srv"
	// UserAgent is sent with every webhook request.
	UserAgent = "auth-srv-webhook/1.0"
)

// Config holds Discord webhook client configuration.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
	Username   string
}

// WebhookPayload is the Discord webhook request body.
type WebhookPayload struct {
	Username string `json:"username,omitempty"`
	Content  string `json:"content"`
}

type webhookInfo struct {
	id    string
	token string
}

// discordImpl implements IDiscord.
type discordImpl struct {
	l       log.Logger
	webhook *webhookInfo
	config  Config
	client  *http.Client
}
