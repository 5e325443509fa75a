package repository

import (
	"context"

	"auth-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	CreateAuditLog(ctx context.Context, opt CreateAuditLogOptions) (model.AuditLog, error)
	ListAuditLogs(ctx context.Context, opt ListAuditLogsOptions) ([]model.AuditLog, int64, error)
}
