package audit

import (
	"auth-srv/internal/model"
	"auth-srv/pkg/paginator"
)

type RecordInput struct {
	UserID   int64
	Email    string
	Action   model.AuditAction
	Success  bool
	Detail   string
	ClientIP string
}

type ListInput struct {
	Action   string
	PagQuery paginator.PaginateQuery
}

type ListOutput struct {
	Logs      []model.AuditLog
	Paginator paginator.Paginator
}
