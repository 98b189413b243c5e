package http_handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/baechuer/grandveggie/internal/application/catalog"
	"github.com/baechuer/grandveggie/internal/application/session"
	"github.com/baechuer/grandveggie/internal/infrastructure/memory"
	"github.com/baechuer/grandveggie/internal/transport/http/middleware"
)

// instantClock fires immediately so the credential-check delay is skipped.
type instantClock struct{}

func (instantClock) Now() time.Time { return time.Now() }

func (instantClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()

	st, err := session.NewStore(context.Background(), session.Deps{
		Credentials: memory.NewCredentialTable(memory.DefaultSeed()),
		State:       memory.NewStateStore(),
		Clock:       instantClock{},
		Log:         zerolog.Nop(),
	}, session.Config{})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return st
}

func newTestCatalog() *catalog.Service {
	return catalog.NewService(memory.DefaultCatalog())
}

func loginAdmin(t *testing.T, st *session.Store) {
	t.Helper()
	if err := st.Login(context.Background(), "admin@grandveggie.com", "admin123"); err != nil {
		t.Fatalf("login admin: %v", err)
	}
}

// mustJSONBody marshals v to JSON and returns an io.Reader for request body.
func mustJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json marshal: %v", err)
	}
	return bytes.NewReader(b)
}

// mustReadJSON decodes JSON from r into out, unwrapping {"data": ...} when present.
func mustReadJSON(t *testing.T, r io.Reader, out any) {
	t.Helper()

	raw, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	wrapped := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped.Data) > 0 {
		raw = wrapped.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("decode json failed; body=%s err=%v", string(raw), err)
	}
}

// errorCode pulls error.code out of an error envelope.
func errorCode(t *testing.T, body *bytes.Buffer) string {
	t.Helper()

	var e struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body.Bytes(), &e); err != nil {
		t.Fatalf("decode error body: %v; body=%s", err, body.String())
	}
	return e.Error.Code
}

// withSession runs LoadSession in front of h.
func withSession(st middleware.SessionReader, h http.HandlerFunc) http.Handler {
	return middleware.LoadSession(st)(h)
}

// withURLParam injects chi URL param (e.g. /menu/{id}) into request context.
func withURLParam(req *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	return req.WithContext(ctx)
}
