package scope

import (
	"context"

	"auth-srv/internal/model"
)

// SetScopeToContext sets the authenticated scope to context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ScopeCtxKey{}, sc)
}

// GetScopeFromContext gets the authenticated scope from context.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ScopeCtxKey{}).(model.Scope)
	return sc, ok
}

// SetSessionIDToContext sets the current session id to context.
func SetSessionIDToContext(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDCtxKey{}, sessionID)
}

// GetSessionIDFromContext gets the current session id from context.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey{}).(string)
	return sessionID, ok
}

// SetClientIPToContext sets the caller's IP address to context.
func SetClientIPToContext(ctx context.Context, clientIP string) context.Context {
	return context.WithValue(ctx, ClientIPCtxKey{}, clientIP)
}

// GetClientIPFromContext gets the caller's IP address from context.
func GetClientIPFromContext(ctx context.Context) (string, bool) {
	clientIP, ok := ctx.Value(ClientIPCtxKey{}).(string)
	return clientIP, ok
}
