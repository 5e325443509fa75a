package http

import (
	"auth-srv/internal/audit"
	"auth-srv/pkg/paginator"
	"auth-srv/pkg/response"
)

type auditLogResp struct {
	ID        string            `json:"id"`
	UserID    int64             `json:"user_id"`
	Email     string            `json:"email"`
	Action    string            `json:"action"`
	Success   bool              `json:"success"`
	Detail    string            `json:"detail,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
}

type listResp struct {
	Logs      []auditLogResp              `json:"logs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newListResp(o audit.ListOutput) listResp {
	logs := make([]auditLogResp, len(o.Logs))
	for i, al := range o.Logs {
		logs[i] = auditLogResp{
			ID:        al.ID,
			UserID:    al.UserID,
			Email:     al.Email,
			Action:    string(al.Action),
			Success:   al.Success,
			Detail:    al.Detail,
			ClientIP:  al.ClientIP,
			CreatedAt: response.DateTime(al.CreatedAt),
		}
	}
	return listResp{
		Logs:      logs,
		Paginator: o.Paginator.ToResponse(),
	}
}
