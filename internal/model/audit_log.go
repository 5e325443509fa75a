package model

import "time"

// AuditAction enumerates recorded token and session events.
type AuditAction string

const (
	AuditActionLogin        AuditAction = "login"
	AuditActionLogout       AuditAction = "logout"
	AuditActionTokenIssue   AuditAction = "token_issue"
	AuditActionTokenVerify  AuditAction = "token_verify"
	AuditActionTokenRefresh AuditAction = "token_refresh"
)

// AuditLog is one recorded authentication event.
type AuditLog struct {
	ID        string      `json:"id"`
	UserID    int64       `json:"user_id"`
	Email     string      `json:"email"`
	Action    AuditAction `json:"action"`
	Success   bool        `json:"success"`
	Detail    string      `json:"detail,omitempty"`
	ClientIP  string      `json:"client_ip,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}
