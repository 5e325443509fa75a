package http

import (
	"auth-srv/internal/auth"
)

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginUserResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type loginResp struct {
	SessionToken string        `json:"session_token"`
	ExpiresIn    int64         `json:"expires_in"`
	User         loginUserResp `json:"user"`
}

func (h *handler) newLoginResp(o auth.LoginOutput) loginResp {
	return loginResp{
		SessionToken: o.SessionID,
		ExpiresIn:    o.ExpiresIn,
		User: loginUserResp{
			ID:    o.User.ID,
			Name:  o.User.Name,
			Email: o.User.Email,
		},
	}
}
