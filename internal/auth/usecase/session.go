package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"auth-srv/internal/audit"
	"auth-srv/internal/auth"
	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/pkg/redis"
	"auth-srv/pkg/scope"

	"github.com/google/uuid"
)

const sessionKeyPrefix = "session:"

func sessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// Login checks credentials and opens a new session in Redis.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	u, err := uc.userUC.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			uc.record(ctx, 0, input.Email, false, auth.ErrInvalidCredentials.Error())
			return auth.LoginOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "auth.usecase.Login.GetByEmail: %v", err)
		return auth.LoginOutput{}, err
	}

	if !uc.encrypter.CheckPasswordHash(input.Password, u.PasswordHash) {
		uc.record(ctx, u.ID, u.Email, false, auth.ErrInvalidCredentials.Error())
		return auth.LoginOutput{}, auth.ErrInvalidCredentials
	}

	sessionID := uuid.New().String()
	payload, err := json.Marshal(u.Scope())
	if err != nil {
		return auth.LoginOutput{}, fmt.Errorf("marshal session scope: %w", err)
	}

	if err := uc.redis.Set(ctx, sessionKey(sessionID), payload, uc.cfg.SessionTTL); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login.redis.Set: %v", err)
		return auth.LoginOutput{}, err
	}

	uc.record(ctx, u.ID, u.Email, true, "")

	return auth.LoginOutput{
		SessionID: sessionID,
		ExpiresIn: int64(uc.cfg.SessionTTL.Seconds()),
		User:      u,
	}, nil
}

// Logout closes the session. Unknown sessions are not an error.
func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	sc, err := uc.CurrentScope(ctx, sessionID)
	if err != nil && !errors.Is(err, auth.ErrSessionNotFound) {
		return err
	}

	if err := uc.redis.Delete(ctx, sessionKey(sessionID)); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Logout.redis.Delete: %v", err)
		return err
	}

	if sc.UserID != 0 {
		uc.recordAction(ctx, sc.UserID, sc.Email, model.AuditActionLogout, true, "")
	}

	return nil
}

// CurrentScope resolves a session id to its stored scope.
func (uc *implUseCase) CurrentScope(ctx context.Context, sessionID string) (model.Scope, error) {
	if sessionID == "" {
		return model.Scope{}, auth.ErrSessionNotFound
	}

	payload, err := uc.redis.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, redis.ErrNotFound) {
			return model.Scope{}, auth.ErrSessionNotFound
		}
		uc.l.Errorf(ctx, "auth.usecase.CurrentScope.redis.Get: %v", err)
		return model.Scope{}, err
	}

	var sc model.Scope
	if err := json.Unmarshal([]byte(payload), &sc); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.CurrentScope: corrupt session payload: %v", err)
		return model.Scope{}, auth.ErrSessionNotFound
	}

	return sc, nil
}

func (uc *implUseCase) record(ctx context.Context, userID int64, email string, success bool, detail string) {
	uc.recordAction(ctx, userID, email, model.AuditActionLogin, success, detail)
}

func (uc *implUseCase) recordAction(ctx context.Context, userID int64, email string, action model.AuditAction, success bool, detail string) {
	if uc.auditUC == nil {
		return
	}
	clientIP, _ := scope.GetClientIPFromContext(ctx)
	uc.auditUC.Record(ctx, audit.RecordInput{
		UserID:   userID,
		Email:    email,
		Action:   action,
		Success:  success,
		Detail:   detail,
		ClientIP: clientIP,
	})
}
