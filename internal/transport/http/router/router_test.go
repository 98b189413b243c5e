package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/baechuer/grandveggie/internal/application/catalog"
	"github.com/baechuer/grandveggie/internal/application/session"
	"github.com/baechuer/grandveggie/internal/infrastructure/memory"
	http_handlers "github.com/baechuer/grandveggie/internal/transport/http/handlers"
	"github.com/baechuer/grandveggie/internal/transport/http/middleware"
	"github.com/baechuer/grandveggie/internal/transport/http/response"
)

type instantClock struct{}

func (instantClock) Now() time.Time { return time.Now() }

func (instantClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func newTestRouter(t *testing.T, deps Deps) (http.Handler, *session.Store) {
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
	svc := catalog.NewService(memory.DefaultCatalog())

	deps.Health = http_handlers.NewHealthHandler(nil)
	deps.Session = http_handlers.NewSessionHandler(st)
	deps.Catalog = http_handlers.NewCatalogHandler(svc)
	deps.Pages = http_handlers.NewPagesHandler(svc, nil)
	deps.Store = st

	h, err := New(deps)
	if err != nil {
		t.Fatalf("router.New: %v", err)
	}
	return h, st
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNew_RequiresDeps(t *testing.T) {
	if _, err := New(Deps{}); err == nil {
		t.Fatalf("expected error for empty deps")
	}
}

func TestRouter_PublicRoutes(t *testing.T) {
	h, _ := newTestRouter(t, Deps{})

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/login", http.StatusOK},
		{http.MethodGet, "/healthz", http.StatusOK},
		{http.MethodGet, "/readyz", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/menu", http.StatusOK},
		{http.MethodGet, "/api/v1/menu/1", http.StatusOK},
		{http.MethodGet, "/api/v1/menu/missing", http.StatusNotFound},
		{http.MethodGet, "/api/v1/auth/session", http.StatusOK},
		{http.MethodGet, "/api/v1/nope", http.StatusNotFound},
	}
	for _, tc := range tests {
		rr := do(t, h, tc.method, tc.path, "")
		if rr.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d body=%s", tc.method, tc.path, tc.want, rr.Code, rr.Body.String())
		}
	}
}

func TestRouter_UnknownPathRedirectsHome(t *testing.T) {
	h, _ := newTestRouter(t, Deps{})

	rr := do(t, h, http.MethodGet, "/does/not/exist", "")
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/" {
		t.Fatalf("expected 302 to /, got %d %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestRouter_AdminPagesAreGuarded(t *testing.T) {
	h, st := newTestRouter(t, Deps{})

	for _, p := range []string{"/admin", "/admin/menu", "/admin/reservations", "/admin/settings"} {
		rr := do(t, h, http.MethodGet, p, "")
		if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/login" {
			t.Fatalf("%s: expected 302 to /login, got %d %q", p, rr.Code, rr.Header().Get("Location"))
		}
	}
	if rr := do(t, h, http.MethodGet, "/api/v1/admin/dashboard", ""); rr.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous dashboard: expected 401, got %d", rr.Code)
	}

	if err := st.Register(context.Background(), "Jo", "jo@example.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rr := do(t, h, http.MethodGet, "/admin", ""); rr.Code != http.StatusFound {
		t.Fatalf("user role: expected 302, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/api/v1/admin/dashboard", ""); rr.Code != http.StatusForbidden {
		t.Fatalf("user role dashboard: expected 403, got %d", rr.Code)
	}
}

func TestRouter_LoginFlow(t *testing.T) {
	h, _ := newTestRouter(t, Deps{})

	rr := do(t, h, http.MethodPost, "/api/v1/auth/login", `{"email":"admin@grandveggie.com","password":"admin123"}`)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), `"success":true`) {
		t.Fatalf("login: %d %s", rr.Code, rr.Body.String())
	}

	for _, p := range []string{"/admin", "/admin/menu", "/admin/reservations", "/admin/settings", "/api/v1/admin/dashboard", "/api/v1/admin/reservations"} {
		if rr := do(t, h, http.MethodGet, p, ""); rr.Code != http.StatusOK {
			t.Fatalf("%s after login: expected 200, got %d", p, rr.Code)
		}
	}

	if rr := do(t, h, http.MethodPost, "/api/v1/auth/logout", ""); rr.Code != http.StatusNoContent {
		t.Fatalf("logout: expected 204, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodGet, "/admin", ""); rr.Code != http.StatusFound {
		t.Fatalf("after logout: expected 302, got %d", rr.Code)
	}
}

func TestRouter_LoginRateLimit(t *testing.T) {
	h, _ := newTestRouter(t, Deps{
		LoginLimit: middleware.LimitByIP("login", 1, time.Minute, response.WriteError),
	})

	body := `{"email":"admin@grandveggie.com","password":"nope"}`
	if rr := do(t, h, http.MethodPost, "/api/v1/auth/login", body); rr.Code != http.StatusUnauthorized {
		t.Fatalf("first attempt: expected 401, got %d", rr.Code)
	}
	if rr := do(t, h, http.MethodPost, "/api/v1/auth/login", body); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second attempt: expected 429, got %d", rr.Code)
	}
	// Other routes are unaffected.
	if rr := do(t, h, http.MethodGet, "/api/v1/menu", ""); rr.Code != http.StatusOK {
		t.Fatalf("menu: expected 200, got %d", rr.Code)
	}
}

func TestRouter_SetsRequestID(t *testing.T) {
	h, _ := newTestRouter(t, Deps{})

	rr := do(t, h, http.MethodGet, "/healthz", "")
	if rr.Header().Get(middleware.HeaderXRequestID) == "" {
		t.Fatalf("expected X-Request-Id header")
	}
}
