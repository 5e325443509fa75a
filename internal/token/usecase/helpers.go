package usecase

import (
	"context"

	"auth-srv/internal/audit"
	"auth-srv/internal/model"
	"auth-srv/pkg/scope"
)

func toRecordInput(ctx context.Context, userID int64, email string, action model.AuditAction, success bool, detail string) audit.RecordInput {
	clientIP, _ := scope.GetClientIPFromContext(ctx)
	return audit.RecordInput{
		UserID:   userID,
		Email:    email,
		Action:   action,
		Success:  success,
		Detail:   detail,
		ClientIP: clientIP,
	}
}
