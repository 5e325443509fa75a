package repository

import "auth-srv/internal/model"

type CreateAuditLogOptions struct {
	UserID   int64
	Email    string
	Action   model.AuditAction
	Success  bool
	Detail   string
	ClientIP string
}

type ListAuditLogsOptions struct {
	Action string
	Limit  int64
	Offset int64
}
