package session

import (
	"context"
	"crypto/subtle"

	"github.com/baechuer/grandveggie/internal/domain"
)

// Login checks email/password against the credential table after the
// simulated delay. On success the stored user becomes the current user.
// On any failure the previous user is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.update(ctx, func() bool {
		s.loading = true
		return true
	})

	if err := s.wait(ctx); err != nil {
		s.settle(ctx)
		s.audit.LoginFailed(ctx, email, domainCode(err))
		return err
	}

	cred, err := s.creds.Lookup(ctx, email)
	if err != nil {
		s.settle(ctx)
		if !domain.Is(err, "invalid_credentials") {
			s.audit.LoginFailed(ctx, email, domainCode(err))
			return err
		}
		s.audit.LoginFailed(ctx, email, "unknown_email")
		return domain.ErrInvalidCredentials()
	}
	if !passwordMatches(cred.Password, password) {
		s.settle(ctx)
		s.audit.LoginFailed(ctx, email, "bad_password")
		return domain.ErrInvalidCredentials()
	}

	u := cred.User
	s.update(ctx, func() bool {
		s.user = &u
		s.loading = false
		return true
	})

	s.audit.LoginSuccess(ctx, u.ID, u.Email)
	s.publish(ctx, EventLoggedIn, u)
	return nil
}

// passwordMatches is an exact comparison; passwords are stored as given.
func passwordMatches(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
