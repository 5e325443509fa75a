package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"auth-srv/internal/audit"
	"auth-srv/internal/audit/repository"
	"auth-srv/internal/model"
	"auth-srv/pkg/paginator"
)

// Record persists the event and streams it to Kafka. Neither failure
// propagates to the caller.
func (uc *implUseCase) Record(ctx context.Context, input audit.RecordInput) {
	al, err := uc.repo.CreateAuditLog(ctx, repository.CreateAuditLogOptions{
		UserID:   input.UserID,
		Email:    input.Email,
		Action:   input.Action,
		Success:  input.Success,
		Detail:   input.Detail,
		ClientIP: input.ClientIP,
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.Record.CreateAuditLog: %v", err)
		return
	}

	uc.publish(ctx, al)
}

// List - Liệt kê audit events có phân trang
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input audit.ListInput) (audit.ListOutput, error) {
	if input.Action != "" && !isKnownAction(input.Action) {
		return audit.ListOutput{}, audit.ErrInvalidAction
	}

	input.PagQuery.Adjust()

	logs, total, err := uc.repo.ListAuditLogs(ctx, repository.ListAuditLogsOptions{
		Action: input.Action,
		Limit:  input.PagQuery.Limit,
		Offset: input.PagQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.List.ListAuditLogs: %v", err)
		return audit.ListOutput{}, err
	}

	return audit.ListOutput{
		Logs: logs,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(logs)),
			PerPage:     input.PagQuery.Limit,
			CurrentPage: input.PagQuery.Page,
		},
	}, nil
}

func (uc *implUseCase) publish(ctx context.Context, al model.AuditLog) {
	if uc.producer == nil {
		return
	}

	payload, err := json.Marshal(al)
	if err != nil {
		uc.l.Errorf(ctx, "audit.usecase.publish: marshal failed: %v", err)
		return
	}

	key := fmt.Sprintf("%d", al.UserID)
	if err := uc.producer.Publish([]byte(key), payload); err != nil {
		uc.l.Warnf(ctx, "audit.usecase.publish: Publish failed: %v", err)
	}
}

func isKnownAction(action string) bool {
	switch model.AuditAction(action) {
	case model.AuditActionLogin,
		model.AuditActionLogout,
		model.AuditActionTokenIssue,
		model.AuditActionTokenVerify,
		model.AuditActionTokenRefresh:
		return true
	default:
		return false
	}
}
