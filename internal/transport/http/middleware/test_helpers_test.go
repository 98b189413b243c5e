package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/baechuer/grandveggie/internal/domain"
	"github.com/baechuer/grandveggie/internal/infrastructure/redis"
	"github.com/baechuer/grandveggie/internal/transport/http/response"
)

type fixedSession struct{ s domain.Session }

func (f fixedSession) Snapshot() domain.Session { return f.s }

func signedIn(role domain.Role) domain.Session {
	return domain.NewSession(&domain.User{ID: "1", Email: "a@b.c", Name: "A", Role: role}, false)
}

type fakeLimiter struct {
	dec  redis.Decision
	err  error
	keys []string
}

func (f *fakeLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (redis.Decision, error) {
	f.keys = append(f.keys, key)
	return f.dec, f.err
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

var writeErr WriteErrFunc = response.WriteError
