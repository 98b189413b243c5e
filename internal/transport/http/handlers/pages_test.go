package http_handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/grandveggie/internal/application/session"
	"github.com/baechuer/grandveggie/internal/transport/http/dto"
)

func TestHomePage(t *testing.T) {
	st := newTestStore(t)
	h := NewPagesHandler(newTestCatalog(), nil)

	rr := httptest.NewRecorder()
	withSession(st, h.Home).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var page dto.HomePage
	mustReadJSON(t, rr.Body, &page)
	assert.NotEmpty(t, page.Hero.Headline)
	assert.Len(t, page.Dishes, 8)
	assert.Len(t, page.TimeSlots, 10)
	assert.False(t, page.Session.IsAuthenticated)
}

func TestLoginPage(t *testing.T) {
	st := newTestStore(t)
	demo := &dto.DemoCredentials{Email: "admin@grandveggie.com", Password: "admin123"}

	rr := httptest.NewRecorder()
	withSession(st, NewPagesHandler(newTestCatalog(), demo).Login).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))

	var page dto.LoginPage
	mustReadJSON(t, rr.Body, &page)
	require.NotNil(t, page.Demo)
	assert.Equal(t, "admin@grandveggie.com", page.Demo.Email)

	rr = httptest.NewRecorder()
	withSession(st, NewPagesHandler(newTestCatalog(), nil).Login).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))
	assert.NotContains(t, rr.Body.String(), "demo")
}

func TestAdminTabs(t *testing.T) {
	st := newTestStore(t)
	loginAdmin(t, st)
	h := NewPagesHandler(newTestCatalog(), nil)

	get := func(tab string) dto.AdminPage {
		return getAdminPage(t, st, h, tab, "/admin")
	}

	dash := get(TabDashboard)
	assert.Equal(t, TabDashboard, dash.Tab)
	require.NotNil(t, dash.User)
	assert.Equal(t, "Admin User", dash.User.Name)
	assert.Len(t, dash.Stats, 4)

	assert.Len(t, get(TabMenu).Dishes, 8)
	assert.NotEmpty(t, get(TabReservations).Reservations)

	settings := get(TabSettings)
	assert.Empty(t, settings.Dishes)
	assert.Empty(t, settings.Stats)
	assert.Nil(t, dash.Hero)
	assert.Nil(t, dash.Restaurant)
}

func getAdminPage(t *testing.T, st *session.Store, h *PagesHandler, tab, target string) dto.AdminPage {
	t.Helper()

	rr := httptest.NewRecorder()
	withSession(st, h.Admin(tab)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var page dto.AdminPage
	mustReadJSON(t, rr.Body, &page)
	return page
}

func TestAdminSettings_HeroAndRestaurant(t *testing.T) {
	st := newTestStore(t)
	loginAdmin(t, st)
	h := NewPagesHandler(newTestCatalog(), nil)

	page := getAdminPage(t, st, h, TabSettings, "/admin/settings")

	require.NotNil(t, page.Hero)
	assert.Equal(t, "Where every ingredient tells a story", page.Hero.Headline)
	assert.NotEmpty(t, page.Hero.Subtext)
	assert.NotEmpty(t, page.Hero.CTAText)

	require.NotNil(t, page.Restaurant)
	assert.Equal(t, "Grand Veggie", page.Restaurant.Name)
	assert.Equal(t, "+1 (555) 123-4567", page.Restaurant.Phone)
	assert.Equal(t, "hello@grandveggie.com", page.Restaurant.Email)
}

func TestAdminMenu_Search(t *testing.T) {
	st := newTestStore(t)
	loginAdmin(t, st)
	h := NewPagesHandler(newTestCatalog(), nil)

	page := getAdminPage(t, st, h, TabMenu, "/admin/menu?q=MUSHROOM")
	require.Len(t, page.Dishes, 1)
	assert.Equal(t, "Forest Mushroom Risotto", page.Dishes[0].Name)

	page = getAdminPage(t, st, h, TabMenu, "/admin/menu?q=bowl")
	assert.Len(t, page.Dishes, 3)

	page = getAdminPage(t, st, h, TabMenu, "/admin/menu?q=nothing-like-this")
	assert.Empty(t, page.Dishes)
}

func TestAdminReservations_StatusFilter(t *testing.T) {
	st := newTestStore(t)
	loginAdmin(t, st)
	h := NewPagesHandler(newTestCatalog(), nil)

	page := getAdminPage(t, st, h, TabReservations, "/admin/reservations?status=pending")
	require.Len(t, page.Reservations, 1)
	assert.Equal(t, "Michael Chen", page.Reservations[0].Name)

	assert.Len(t, getAdminPage(t, st, h, TabReservations, "/admin/reservations?status=all").Reservations, 3)

	rr := httptest.NewRecorder()
	withSession(st, h.Admin(TabReservations)).
		ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/reservations?status=seated", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid_status", errorCode(t, rr.Body))
}
