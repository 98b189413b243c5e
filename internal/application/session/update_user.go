package session

import (
	"context"

	"github.com/baechuer/grandveggie/internal/domain"
)

// UpdateUser shallow-merges patch into the current user. Without a current
// user it does nothing. The credential table is not touched, so a changed
// email or role only lives in the session.
func (s *Store) UpdateUser(ctx context.Context, patch domain.UserPatch) {
	var updated domain.User
	changed := false
	s.update(ctx, func() bool {
		if s.user == nil || patch.IsEmpty() {
			return false
		}
		updated = patch.Apply(*s.user)
		s.user = &updated
		changed = true
		return true
	})

	if !changed {
		return
	}
	s.audit.ProfileUpdated(ctx, updated.ID)
	s.publish(ctx, EventProfileUpdated, updated)
}
