package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/baechuer/grandveggie/internal/domain"
)

// Content is the static catalog the service reads from.
type Content struct {
	Hero         domain.HeroContent
	Brand        domain.BrandContent
	Restaurant   domain.RestaurantInfo
	Dishes       []domain.Dish
	Reservations []domain.Reservation
}

// Service answers read-only catalog queries and validates booking requests.
// Content is never mutated after construction, so no locking is needed.
type Service struct {
	content Content

	now   func() time.Time
	newID func() string
}

func NewService(content Content) *Service {
	return &Service{
		content: content,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

func (s *Service) Hero() domain.HeroContent { return s.content.Hero }

func (s *Service) Brand() domain.BrandContent { return s.content.Brand }

func (s *Service) Restaurant() domain.RestaurantInfo { return s.content.Restaurant }
