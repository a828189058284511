package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/rdmapp/rdm-server/pkg/slogx"
)

// SessionResolver turns an opaque bearer token into a validated identity.
// Implementations return an error for unknown or expired tokens.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (Identity, error)
}

// SessionMiddleware resolves an optional bearer session token into the
// request context. It never rejects on its own: requests without a token,
// or with a token that fails to resolve, continue with no identity attached
// and the gate middlewares decide what that means for the route.
func SessionMiddleware(resolver SessionResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := BearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			identity, err := resolver.ResolveSession(ctx, token)
			if err != nil {
				slogx.FromContext(ctx).Debug("session resolution failed", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(ctx, identity)))
		})
	}
}

// BearerToken extracts the bearer token from the Authorization header,
// returning "" when none is present.
func BearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
}
