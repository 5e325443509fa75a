package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"auth-srv/internal/model"
	"auth-srv/internal/token"
	"auth-srv/pkg/jwt"
)

// Issue creates a signed bearer token for the authenticated scope.
func (uc *implUseCase) Issue(ctx context.Context, sc model.Scope) (token.IssueOutput, error) {
	if sc.UserID == 0 {
		return token.IssueOutput{}, token.ErrUnauthenticated
	}

	tokenString, err := uc.jwtManager.GenerateToken(sc.UserID, sc.Email, sc.Name)
	if err != nil {
		uc.l.Errorf(ctx, "token.usecase.Issue.GenerateToken: %v", err)
		return token.IssueOutput{}, err
	}

	uc.record(ctx, sc.UserID, sc.Email, model.AuditActionTokenIssue, true, "")

	return token.IssueOutput{
		Token:     tokenString,
		ExpiresIn: int64(uc.jwtManager.TTL().Seconds()),
		User:      sc,
	}, nil
}

// Verify checks the token signature and lifetime and returns its claims.
func (uc *implUseCase) Verify(ctx context.Context, input token.VerifyInput) (token.VerifyOutput, error) {
	if strings.TrimSpace(input.Token) == "" {
		return token.VerifyOutput{}, token.ErrTokenRequired
	}

	claims, err := uc.verifyClaims(ctx, input.Token, model.AuditActionTokenVerify)
	if err != nil {
		return token.VerifyOutput{}, err
	}

	uc.record(ctx, claims.UserID, claims.Email, model.AuditActionTokenVerify, true, "")

	return token.VerifyOutput{
		Claims:    toTokenClaims(claims),
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}

// Refresh exchanges a token close to expiry for a fresh one carrying the
// same identity.
func (uc *implUseCase) Refresh(ctx context.Context, input token.RefreshInput) (token.RefreshOutput, error) {
	if strings.TrimSpace(input.Token) == "" {
		return token.RefreshOutput{}, token.ErrTokenRequired
	}

	claims, err := uc.verifyClaims(ctx, input.Token, model.AuditActionTokenRefresh)
	if err != nil {
		return token.RefreshOutput{}, err
	}

	remaining := time.Unix(claims.ExpiresAt, 0).Sub(uc.now())
	if remaining > uc.cfg.RefreshWindow {
		uc.record(ctx, claims.UserID, claims.Email, model.AuditActionTokenRefresh, false, token.ErrRefreshTooEarly.Error())
		return token.RefreshOutput{}, token.ErrRefreshTooEarly
	}

	tokenString, err := uc.jwtManager.GenerateToken(claims.UserID, claims.Email, claims.Name)
	if err != nil {
		uc.l.Errorf(ctx, "token.usecase.Refresh.GenerateToken: %v", err)
		return token.RefreshOutput{}, err
	}

	uc.record(ctx, claims.UserID, claims.Email, model.AuditActionTokenRefresh, true, "")

	return token.RefreshOutput{
		Token:     tokenString,
		ExpiresIn: int64(uc.jwtManager.TTL().Seconds()),
		User: model.Scope{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		},
	}, nil
}

// verifyClaims runs the codec and collapses its failures into the domain
// error taxonomy. Expiry stays distinct, everything else is invalid.
func (uc *implUseCase) verifyClaims(ctx context.Context, tokenString string, action model.AuditAction) (*jwt.Claims, error) {
	claims, err := uc.jwtManager.Verify(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			uc.record(ctx, 0, "", action, false, token.ErrTokenExpired.Error())
			return nil, token.ErrTokenExpired
		}
		uc.l.Warnf(ctx, "token.usecase.verifyClaims.jwtManager.Verify: %v", err)
		uc.record(ctx, 0, "", action, false, token.ErrTokenInvalid.Error())
		return nil, token.ErrTokenInvalid
	}
	return claims, nil
}

func (uc *implUseCase) record(ctx context.Context, userID int64, email string, action model.AuditAction, success bool, detail string) {
	if uc.auditUC == nil {
		return
	}
	uc.auditUC.Record(ctx, toRecordInput(ctx, userID, email, action, success, detail))
}

func toTokenClaims(claims *jwt.Claims) token.TokenClaims {
	return token.TokenClaims{
		Issuer:    claims.Issuer,
		Audience:  claims.Audience,
		IssuedAt:  claims.IssuedAt,
		ExpiresAt: claims.ExpiresAt,
		Subject:   claims.Subject,
		UserID:    claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
	}
}
