package http

import (
	"time"

	"auth-srv/internal/token"
	"auth-srv/pkg/response"
)

type tokenReq struct {
	Token string `json:"token"`
}

func (r tokenReq) toVerifyInput() token.VerifyInput {
	return token.VerifyInput{Token: r.Token}
}

func (r tokenReq) toRefreshInput() token.RefreshInput {
	return token.RefreshInput{Token: r.Token}
}

type userResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type issueResp struct {
	Token     string   `json:"token"`
	Type      string   `json:"type"`
	ExpiresIn int64    `json:"expires_in"`
	User      userResp `json:"user"`
}

type claimsResp struct {
	Issuer    string `json:"iss"`
	Audience  string `json:"aud"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
	Subject   string `json:"sub"`
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
}

type verifyResp struct {
	Valid     bool       `json:"valid"`
	Payload   claimsResp `json:"payload"`
	ExpiresAt string     `json:"expires_at"`
}

func (h *handler) newIssueResp(o token.IssueOutput) issueResp {
	return issueResp{
		Token:     o.Token,
		Type:      token.TokenType,
		ExpiresIn: o.ExpiresIn,
		User: userResp{
			ID:    o.User.UserID,
			Name:  o.User.Name,
			Email: o.User.Email,
		},
	}
}

func (h *handler) newVerifyResp(o token.VerifyOutput) verifyResp {
	return verifyResp{
		Valid: true,
		Payload: claimsResp{
			Issuer:    o.Claims.Issuer,
			Audience:  o.Claims.Audience,
			IssuedAt:  o.Claims.IssuedAt,
			ExpiresAt: o.Claims.ExpiresAt,
			Subject:   o.Claims.Subject,
			UserID:    o.Claims.UserID,
			Email:     o.Claims.Email,
			Name:      o.Claims.Name,
		},
		ExpiresAt: o.ExpiresAt.In(time.Local).Format(response.DateTimeFormat),
	}
}

func (h *handler) newRefreshResp(o token.RefreshOutput) issueResp {
	return issueResp{
		Token:     o.Token,
		Type:      token.TokenType,
		ExpiresIn: o.ExpiresIn,
		User: userResp{
			ID:    o.User.UserID,
			Name:  o.User.Name,
			Email: o.User.Email,
		},
	}
}
