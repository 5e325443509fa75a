package scope

// ScopeCtxKey is the context key for the authenticated scope.
type ScopeCtxKey struct{}

// SessionIDCtxKey is the context key for the current session id.
type SessionIDCtxKey struct{}

// ClientIPCtxKey is the context key for the caller's IP address.
type ClientIPCtxKey struct{}
