package domain

type Role string

const (
	// RoleUser is what every self-registered account gets.
	RoleUser Role = "user"
	// RoleAdmin can open the dashboard, menu management, reservations and settings.
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleUser) || r == string(RoleAdmin)
}
