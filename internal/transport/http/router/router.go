package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/grandveggie/internal/domain"
	http_handlers "github.com/baechuer/grandveggie/internal/transport/http/handlers"
	"github.com/baechuer/grandveggie/internal/transport/http/middleware"
	"github.com/baechuer/grandveggie/internal/transport/http/response"
)

type HealthHandler interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Readyz(w http.ResponseWriter, r *http.Request)
}

type SessionHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
	UpdateMe(w http.ResponseWriter, r *http.Request)
	Access(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	Menu(w http.ResponseWriter, r *http.Request)
	Dish(w http.ResponseWriter, r *http.Request)
	Booking(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
	Reservations(w http.ResponseWriter, r *http.Request)
}

type PagesHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Admin(tab string) http.HandlerFunc
}

type Deps struct {
	Health  HealthHandler
	Session SessionHandler
	Catalog CatalogHandler
	Pages   PagesHandler

	// Store is read once per request to evaluate the route guards.
	Store middleware.SessionReader

	// LoginLimit and RegisterLimit are optional rate limits.
	LoginLimit    func(http.Handler) http.Handler
	RegisterLimit func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Session == nil {
		return nil, fmt.Errorf("nil Session handler")
	}
	if deps.Catalog == nil {
		return nil, fmt.Errorf("nil Catalog handler")
	}
	if deps.Pages == nil {
		return nil, fmt.Errorf("nil Pages handler")
	}
	if deps.Store == nil {
		return nil, fmt.Errorf("nil session store")
	}
	loginLimit := orPassthrough(deps.LoginLimit)
	registerLimit := orPassthrough(deps.RegisterLimit)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Metrics)

	r.Get("/healthz", deps.Health.Healthz)
	r.Get("/readyz", deps.Health.Readyz)
	r.Handle("/metrics", promhttp.Handler())

	// --- Pages ---
	r.Group(func(r chi.Router) {
		r.Use(middleware.LoadSession(deps.Store))

		r.Get("/", deps.Pages.Home)
		r.Get("/login", deps.Pages.Login)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAccess(domain.RoleAdmin, "/login"))

			r.Get("/", deps.Pages.Admin(http_handlers.TabDashboard))
			r.Get("/menu", deps.Pages.Admin(http_handlers.TabMenu))
			r.Get("/reservations", deps.Pages.Admin(http_handlers.TabReservations))
			r.Get("/settings", deps.Pages.Admin(http_handlers.TabSettings))
		})
	})

	// --- JSON API ---
	r.Route("/api/v1", func(r chi.Router) {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			response.WriteError(w, r, domain.ErrRouteNotFound())
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(loginLimit).Post("/login", deps.Session.Login)
			r.With(registerLimit).Post("/register", deps.Session.Register)
			r.Post("/logout", deps.Session.Logout)
			r.Get("/session", deps.Session.Session)
			r.Patch("/me", deps.Session.UpdateMe)
			r.Get("/access", deps.Session.Access)
		})

		r.Get("/menu", deps.Catalog.Menu)
		r.Get("/menu/{id}", deps.Catalog.Dish)
		r.Post("/bookings", deps.Catalog.Booking)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.LoadSession(deps.Store))
			r.Use(middleware.RequireRole(domain.RoleAdmin, response.WriteError))

			r.Get("/dashboard", deps.Catalog.Dashboard)
			r.Get("/reservations", deps.Catalog.Reservations)
		})
	})

	// Anything else lands on the home page.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return r, nil
}

func orPassthrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw != nil {
		return mw
	}
	return func(next http.Handler) http.Handler { return next }
}
