package middleware

import (
	"net/http"

	"github.com/baechuer/grandveggie/internal/application/session"
	"github.com/baechuer/grandveggie/internal/domain"
	"github.com/baechuer/grandveggie/internal/logger"
)

// RequireAccess guards page routes. Callers without access are redirected
// (302) to redirectTo. An empty role only requires a signed-in user.
// Assumes LoadSession has run.
func RequireAccess(role domain.Role, redirectTo string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.HasAccess(SessionFromContext(r.Context()), role) {
				http.Redirect(w, r, redirectTo, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole guards API routes: 401 when signed out, 403 when the role
// does not match.
func RequireRole(role domain.Role, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := SessionFromContext(r.Context())
			if !s.IsAuthenticated {
				writeErr(w, r, domain.ErrNotAuthenticated())
				return
			}
			if !session.HasAccess(s, role) {
				uid, _ := UserIDFromContext(r.Context())
				logger.WithCtx(r.Context()).Warn().
					Str("user_id", uid).
					Str("required", string(role)).
					Str("path", r.URL.Path).
					Msg("access denied")
				writeErr(w, r, domain.ErrInsufficientRole(string(role)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
