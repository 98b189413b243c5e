package middleware

import (
	"context"

	"github.com/baechuer/grandveggie/internal/domain"
)

type ctxKey string

const ctxSession ctxKey = "session"

func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, ctxSession, s)
}

// SessionFromContext returns the snapshot stored by LoadSession, or the
// anonymous session when none is present.
func SessionFromContext(ctx context.Context) domain.Session {
	if s, ok := ctx.Value(ctxSession).(domain.Session); ok {
		return s
	}
	return domain.Anonymous()
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	s := SessionFromContext(ctx)
	if s.User == nil || s.User.ID == "" {
		return "", false
	}
	return s.User.ID, true
}
