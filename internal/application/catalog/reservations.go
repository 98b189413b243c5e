package catalog

import (
	"github.com/baechuer/grandveggie/internal/domain"
)

// ListReservations filters by status. "" and "all" return every reservation.
func (s *Service) ListReservations(status string) ([]domain.Reservation, error) {
	if status != "" && status != "all" && !domain.IsValidReservationStatus(status) {
		return nil, domain.ErrInvalidStatus(status)
	}
	out := make([]domain.Reservation, 0, len(s.content.Reservations))
	for _, r := range s.content.Reservations {
		if status == "" || status == "all" || string(r.Status) == status {
			out = append(out, r)
		}
	}
	return out, nil
}

// RecentReservations returns the first n reservations in catalog order.
func (s *Service) RecentReservations(n int) []domain.Reservation {
	if n < 0 {
		n = 0
	}
	if n > len(s.content.Reservations) {
		n = len(s.content.Reservations)
	}
	out := make([]domain.Reservation, n)
	copy(out, s.content.Reservations[:n])
	return out
}

func (s *Service) countByStatus(status domain.ReservationStatus) int {
	n := 0
	for _, r := range s.content.Reservations {
		if r.Status == status {
			n++
		}
	}
	return n
}

// DashboardStats returns the admin overview tiles.
// Change labels and the order value are fixed display copy.
func (s *Service) DashboardStats() []domain.DashboardStat {
	return []domain.DashboardStat{
		{Label: "Total Dishes", Value: len(s.content.Dishes), Change: "+2 this week"},
		{Label: "Active Reservations", Value: s.countByStatus(domain.StatusConfirmed), Change: "+5 today"},
		{Label: "Pending Reviews", Value: s.countByStatus(domain.StatusPending), Change: "3 urgent"},
		{Label: "Avg. Order Value", Value: "$24.50", Change: "+12%"},
	}
}
