package httpx

import (
	"net/http"
	"strings"
)

// The gate middlewares run before any handler body so a rejected request
// causes no side effects. Only two rejection kinds exist: UNAUTHORIZED when
// no session was resolved, FORBIDDEN when a session lacks the required role.

// RequireSession rejects requests that carry no resolved session.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			ErrUnauthorized.WriteError(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose session role set lacks the admin role.
// Missing sessions are UNAUTHORIZED, never FORBIDDEN.
func RequireAdmin(adminRole string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				ErrUnauthorized.WriteError(w)
				return
			}

			for _, role := range identity.Roles {
				if role == adminRole {
					next.ServeHTTP(w, r)
					return
				}
			}

			ErrForbidden.WithMessage("Admin access required").WriteError(w)
		})
	}
}

// RequireRoles rejects sessions whose role set does not intersect the
// allowed list. The rejection names the required roles for diagnostics.
func RequireRoles(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFromContext(r.Context())
			if !ok {
				ErrUnauthorized.WriteError(w)
				return
			}

			for _, role := range identity.Roles {
				if _, ok := want[role]; ok {
					next.ServeHTTP(w, r)
					return
				}
			}

			ErrForbidden.
				WithMessage("Required role: " + strings.Join(allowed, " or ")).
				WriteError(w)
		})
	}
}
