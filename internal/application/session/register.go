package session

import (
	"context"

	"github.com/baechuer/grandveggie/internal/domain"
)

// Register adds a credential entry for email and signs the new user in.
// New accounts always get the user role. A duplicate email leaves both the
// table and the current user unchanged.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	s.update(ctx, func() bool {
		s.loading = true
		return true
	})

	if err := s.wait(ctx); err != nil {
		s.settle(ctx)
		s.audit.RegisterFailed(ctx, email, domainCode(err))
		return err
	}

	u := domain.User{
		ID:    s.newID(),
		Email: email,
		Name:  name,
		Role:  domain.RoleUser,
	}
	if err := s.creds.Insert(ctx, email, domain.Credential{Password: password, User: u}); err != nil {
		s.settle(ctx)
		s.audit.RegisterFailed(ctx, email, domainCode(err))
		return err
	}

	s.update(ctx, func() bool {
		s.user = &u
		s.loading = false
		return true
	})

	s.audit.Registered(ctx, u.ID, u.Email)
	s.publish(ctx, EventRegistered, u)
	return nil
}
