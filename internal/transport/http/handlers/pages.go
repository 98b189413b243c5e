package http_handlers

import (
	"net/http"

	"github.com/baechuer/grandveggie/internal/application/catalog"
	"github.com/baechuer/grandveggie/internal/transport/http/dto"
	"github.com/baechuer/grandveggie/internal/transport/http/middleware"
	"github.com/baechuer/grandveggie/internal/transport/http/response"
)

// Admin tabs.
const (
	TabDashboard    = "dashboard"
	TabMenu         = "menu"
	TabReservations = "reservations"
	TabSettings     = "settings"
)

// PagesHandler serves the page payloads. The session comes from the
// snapshot LoadSession put in the request context.
type PagesHandler struct {
	catalog *catalog.Service
	demo    *dto.DemoCredentials
}

// NewPagesHandler builds the handler. demo may be nil to hide the demo
// credentials hint on the login page.
func NewPagesHandler(svc *catalog.Service, demo *dto.DemoCredentials) *PagesHandler {
	return &PagesHandler{catalog: svc, demo: demo}
}

// Home handles GET /.
func (h *PagesHandler) Home(w http.ResponseWriter, r *http.Request) {
	brand := h.catalog.Brand()
	response.OK(w, dto.HomePage{
		Hero:       h.catalog.Hero(),
		Dishes:     h.catalog.SearchDishes(""),
		Categories: h.catalog.Categories(),
		Philosophy: brand.Philosophy,
		Stats:      brand.Stats,
		Session:    middleware.SessionFromContext(r.Context()),
		TimeSlots:  catalog.TimeSlots,
	})
}

// Login handles GET /login.
func (h *PagesHandler) Login(w http.ResponseWriter, r *http.Request) {
	response.OK(w, dto.LoginPage{
		Session: middleware.SessionFromContext(r.Context()),
		Demo:    h.demo,
	})
}

// Admin returns the handler for one admin tab. Access is checked by
// RequireAccess in front of it. The menu tab honours ?q= and the
// reservations tab honours ?status=.
func (h *PagesHandler) Admin(tab string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := dto.AdminPage{
			Tab:  tab,
			User: middleware.SessionFromContext(r.Context()).User,
		}

		switch tab {
		case TabDashboard:
			page.Stats = h.catalog.DashboardStats()
			page.Reservations = h.catalog.RecentReservations(RecentReservationsLimit)
		case TabMenu:
			page.Dishes = h.catalog.SearchDishes(r.URL.Query().Get("q"))
		case TabReservations:
			list, err := h.catalog.ListReservations(r.URL.Query().Get("status"))
			if err != nil {
				response.WriteError(w, r, err)
				return
			}
			page.Reservations = list
		case TabSettings:
			hero := h.catalog.Hero()
			info := h.catalog.Restaurant()
			page.Hero = &hero
			page.Restaurant = &info
		}

		response.OK(w, page)
	}
}
