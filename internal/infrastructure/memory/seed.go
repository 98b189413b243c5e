package memory

import "github.com/baechuer/grandveggie/internal/domain"

// DefaultSeed is the demo administrator the service ships with.
func DefaultSeed() []domain.Credential {
	return []domain.Credential{
		{
			Password: "admin123",
			User: domain.User{
				ID:    "1",
				Email: "admin@grandveggie.com",
				Name:  "Admin User",
				Role:  domain.RoleAdmin,
			},
		},
	}
}
