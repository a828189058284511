package httpx

import "context"

type ctxKey string

const (
	CtxKeySession ctxKey = "session"
)

// Identity is the validated session view the gate middlewares operate on.
// Roles holds the resolved role tokens, never the raw comma-separated form.
type Identity struct {
	SessionID string
	UserID    string
	Name      string
	Email     string
	Roles     []string
}

// ContextWithIdentity attaches a resolved session identity to ctx.
func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, CtxKeySession, id)
}

// IdentityFromContext returns the session identity, if one was resolved.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(CtxKeySession).(Identity)
	return id, ok
}
