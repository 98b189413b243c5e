package catalog

import (
	"strings"
	"time"

	"github.com/baechuer/grandveggie/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	// MinGuests is the smallest party. There is no upper bound: the
	// booking form offers 1 to 6 and an open "7+" choice.
	MinGuests = 1
)

// TimeSlots are the bookable seatings, every 30 minutes from 17:00 to 21:30.
var TimeSlots = []string{
	"17:00", "17:30", "18:00", "18:30", "19:00",
	"19:30", "20:00", "20:30", "21:00", "21:30",
}

type BookingRequest struct {
	Date            string
	Time            string
	Guests          int
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

func isTimeSlot(t string) bool {
	for _, s := range TimeSlots {
		if s == t {
			return true
		}
	}
	return false
}

// ValidateBooking checks a reservation request and echoes it back as a
// pending reservation. Nothing is stored. Field format checks (email syntax,
// required strings) belong to the transport layer; this covers the rules
// that need catalog knowledge or the clock.
func (s *Service) ValidateBooking(req BookingRequest) (domain.Reservation, error) {
	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return domain.Reservation{}, domain.ErrInvalidField("date", "must be YYYY-MM-DD")
	}
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return domain.Reservation{}, domain.ErrInvalidField("date", "must not be in the past")
	}
	if !isTimeSlot(req.Time) {
		return domain.Reservation{}, domain.ErrInvalidField("time", "not an available time slot")
	}
	if req.Guests < MinGuests {
		return domain.Reservation{}, domain.ErrInvalidField("guests", "must be at least 1")
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Reservation{}, domain.ErrMissingField("name")
	}
	if strings.TrimSpace(req.Email) == "" {
		return domain.Reservation{}, domain.ErrMissingField("email")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return domain.Reservation{}, domain.ErrMissingField("phone")
	}

	return domain.Reservation{
		ID:              "res-" + s.newID(),
		Name:            name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		Status:          domain.StatusPending,
		CreatedAt:       now.UTC().Format(time.RFC3339),
	}, nil
}
