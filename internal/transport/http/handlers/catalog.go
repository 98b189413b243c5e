package http_handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/baechuer/grandveggie/internal/application/catalog"
	"github.com/baechuer/grandveggie/internal/domain"
	"github.com/baechuer/grandveggie/internal/logger"
	"github.com/baechuer/grandveggie/internal/transport/http/dto"
	"github.com/baechuer/grandveggie/internal/transport/http/response"
)

// RecentReservationsLimit is how many reservations the dashboard lists.
const RecentReservationsLimit = 5

type CatalogHandler struct {
	svc *catalog.Service
}

func NewCatalogHandler(svc *catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// Menu handles GET /menu?q=&category=.
func (h *CatalogHandler) Menu(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	category := r.URL.Query().Get("category")

	response.OK(w, dto.MenuView{
		Categories: h.svc.Categories(),
		Dishes:     h.svc.FilterMenu(q, category),
	})
}

// Dish handles GET /menu/{id}.
func (h *CatalogHandler) Dish(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDish(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	response.OK(w, d)
}

// Booking handles POST /bookings. The confirmation is echoed back and
// nothing is stored.
func (h *CatalogHandler) Booking(w http.ResponseWriter, r *http.Request) {
	var req dto.BookingRequest
	if err := response.DecodeJSON(w, r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.ValidateBooking(req.ToCatalog())
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info().
		Str("reservation_id", res.ID).
		Str("date", res.Date).
		Str("time", res.Time).
		Int("guests", res.Guests).
		Msg("booking_requested")

	response.Created(w, res)
}

// Dashboard handles GET /admin/dashboard.
func (h *CatalogHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	response.OK(w, dto.DashboardView{
		Stats:              h.svc.DashboardStats(),
		RecentReservations: h.svc.RecentReservations(RecentReservationsLimit),
	})
}

// Reservations handles GET /admin/reservations?status=.
func (h *CatalogHandler) Reservations(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListReservations(r.URL.Query().Get("status"))
	if err != nil {
		response.WriteError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Reservation{}
	}
	response.OK(w, list)
}
