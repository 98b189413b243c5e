package dto

import (
	"github.com/baechuer/grandveggie/internal/domain"
)

type AccessView struct {
	HasAccess bool `json:"hasAccess"`
}

type MenuView struct {
	Categories []string      `json:"categories"`
	Dishes     []domain.Dish `json:"dishes"`
}

type HomePage struct {
	Hero       domain.HeroContent `json:"hero"`
	Dishes     []domain.Dish      `json:"dishes"`
	Categories []string           `json:"categories"`
	Philosophy domain.Philosophy  `json:"philosophy"`
	Stats      domain.BrandStats  `json:"stats"`
	Session    domain.Session     `json:"session"`
	TimeSlots  []string           `json:"timeSlots"`
}

type DemoCredentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginPage struct {
	Session domain.Session   `json:"session"`
	Demo    *DemoCredentials `json:"demo,omitempty"`
}

type AdminPage struct {
	Tab          string                 `json:"tab"`
	User         *domain.User           `json:"user"`
	Stats        []domain.DashboardStat `json:"stats,omitempty"`
	Reservations []domain.Reservation   `json:"reservations,omitempty"`
	Dishes       []domain.Dish          `json:"dishes,omitempty"`
	Hero         *domain.HeroContent    `json:"hero,omitempty"`
	Restaurant   *domain.RestaurantInfo `json:"restaurant,omitempty"`
}

type DashboardView struct {
	Stats              []domain.DashboardStat `json:"stats"`
	RecentReservations []domain.Reservation   `json:"recentReservations"`
}
