package session

import (
	"context"

	"github.com/baechuer/grandveggie/internal/domain"
)

// Logout clears the current user. It never fails and is idempotent; the
// pending flag is left as is.
func (s *Store) Logout(ctx context.Context) {
	var prev *domain.User
	s.update(ctx, func() bool {
		prev = s.user
		if prev == nil {
			return false
		}
		s.user = nil
		return true
	})

	if prev == nil {
		return
	}
	s.audit.Logout(ctx, prev.ID)
	s.publish(ctx, EventLoggedOut, *prev)
}
