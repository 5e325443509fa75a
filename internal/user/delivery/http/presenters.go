package http

import (
	"auth-srv/internal/user"
	"auth-srv/pkg/response"
)

type detailResp struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Email           string             `json:"email"`
	EmailVerifiedAt *response.DateTime `json:"email_verified_at"`
	CreatedAt       response.DateTime  `json:"created_at"`
	UpdatedAt       response.DateTime  `json:"updated_at"`
}

func (h *handler) newDetailResp(o user.DetailOutput) detailResp {
	resp := detailResp{
		ID:        o.User.ID,
		Name:      o.User.Name,
		Email:     o.User.Email,
		CreatedAt: response.DateTime(o.User.CreatedAt),
		UpdatedAt: response.DateTime(o.User.UpdatedAt),
	}
	if o.User.EmailVerifiedAt != nil {
		verifiedAt := response.DateTime(*o.User.EmailVerifiedAt)
		resp.EmailVerifiedAt = &verifiedAt
	}
	return resp
}
