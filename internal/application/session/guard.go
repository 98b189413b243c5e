package session

import "github.com/baechuer/grandveggie/internal/domain"

// Access is the route-guard view of a session.
type Access struct {
	IsAuthenticated bool         `json:"isAuthenticated"`
	User            *domain.User `json:"user"`
	IsLoading       bool         `json:"isLoading"`
	HasAccess       bool         `json:"hasAccess"`
}

// HasAccess reports whether s may enter a route that requires role.
// An empty role only requires authentication.
func HasAccess(s domain.Session, role domain.Role) bool {
	if !s.IsAuthenticated || s.User == nil {
		return false
	}
	return role == "" || s.User.Role == role
}

// HasAccess evaluates the guard against the current state.
func (s *Store) HasAccess(role domain.Role) bool {
	return HasAccess(s.Snapshot(), role)
}

// RequireAuth returns the current state together with the guard result.
func (s *Store) RequireAuth(role domain.Role) Access {
	snap := s.Snapshot()
	return Access{
		IsAuthenticated: snap.IsAuthenticated,
		User:            snap.User,
		IsLoading:       snap.IsLoading,
		HasAccess:       HasAccess(snap, role),
	}
}
