package scope

import "context"

type scopeCtxKey struct{}

// SetScopeToContext attaches an authenticated identity to ctx.
func SetScopeToContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, s)
}

// GetScopeFromContext returns the identity attached by the auth middleware.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeCtxKey{}).(Scope)
	if !ok || s.UserID == "" {
		return Scope{}, false
	}
	return s, true
}

// GetUserIDFromContext is a shortcut returning "" for anonymous requests.
func GetUserIDFromContext(ctx context.Context) string {
	s, _ := GetScopeFromContext(ctx)
	return s.UserID
}
