package middleware

import (
	"net/http"

	"github.com/baechuer/grandveggie/internal/domain"
)

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// SessionReader is the read side of the session store.
type SessionReader interface {
	Snapshot() domain.Session
}

// LoadSession takes a fresh snapshot of the session for every request and
// puts it in the request context for the guards below.
func LoadSession(store SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithSession(r.Context(), store.Snapshot())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
