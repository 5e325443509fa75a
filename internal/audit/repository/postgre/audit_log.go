package postgre

import (
	"context"
	"fmt"
	"time"

	"auth-srv/internal/audit/repository"
	"auth-srv/internal/model"

	"github.com/google/uuid"
)

// CreateAuditLog - Ghi một audit event mới
func (r *implRepository) CreateAuditLog(ctx context.Context, opt repository.CreateAuditLogOptions) (model.AuditLog, error) {
	id := uuid.New().String()
	now := time.Now()

	query := `
		INSERT INTO audit_logs (id, user_id, email, action, success, detail, client_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, email, action, success, detail, client_ip, created_at
	`

	var al model.AuditLog
	err := r.db.QueryRowContext(ctx, query,
		id, opt.UserID, opt.Email, opt.Action, opt.Success, opt.Detail, opt.ClientIP, now,
	).Scan(
		&al.ID, &al.UserID, &al.Email, &al.Action,
		&al.Success, &al.Detail, &al.ClientIP, &al.CreatedAt,
	)
	if err != nil {
		return model.AuditLog{}, fmt.Errorf("CreateAuditLog: %w", err)
	}

	return al, nil
}

// ListAuditLogs - Liệt kê audit events, mới nhất trước
func (r *implRepository) ListAuditLogs(ctx context.Context, opt repository.ListAuditLogsOptions) ([]model.AuditLog, int64, error) {
	var total int64
	countQuery := `SELECT COUNT(*) FROM audit_logs WHERE ($1 = '' OR action = $1)`
	if err := r.db.QueryRowContext(ctx, countQuery, opt.Action).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListAuditLogs count: %w", err)
	}

	query := `
		SELECT id, user_id, email, action, success, detail, client_ip, created_at
		FROM audit_logs
		WHERE ($1 = '' OR action = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, opt.Action, opt.Limit, opt.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("ListAuditLogs: %w", err)
	}
	defer rows.Close()

	var logs []model.AuditLog
	for rows.Next() {
		var al model.AuditLog
		if err := rows.Scan(
			&al.ID, &al.UserID, &al.Email, &al.Action,
			&al.Success, &al.Detail, &al.ClientIP, &al.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("ListAuditLogs scan: %w", err)
		}
		logs = append(logs, al)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListAuditLogs rows: %w", err)
	}

	return logs, total, nil
}
