package audit

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	reqctx "github.com/baechuer/grandveggie/internal/pkg/context"
)

// Logger writes the audit trail for session operations.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

func (l *Logger) event(ctx context.Context, e *zerolog.Event, action string) *zerolog.Event {
	return e.
		Str("action", action).
		Str("ip", reqctx.GetClientIP(ctx)).
		Str("request_id", reqctx.GetRequestID(ctx))
}

func (l *Logger) LoginSuccess(ctx context.Context, userID, email string) {
	l.event(ctx, l.log.Info(), "login_success").
		Str("user_id", userID).
		Str("email", maskEmail(email)).
		Msg("User logged in successfully")
}

func (l *Logger) LoginFailed(ctx context.Context, email, reason string) {
	l.event(ctx, l.log.Warn(), "login_failed").
		Str("email", maskEmail(email)).
		Str("reason", reason).
		Msg("Login attempt failed")
}

func (l *Logger) Registered(ctx context.Context, userID, email string) {
	l.event(ctx, l.log.Info(), "registered").
		Str("user_id", userID).
		Str("email", maskEmail(email)).
		Msg("User registered")
}

func (l *Logger) RegisterFailed(ctx context.Context, email, reason string) {
	l.event(ctx, l.log.Warn(), "register_failed").
		Str("email", maskEmail(email)).
		Str("reason", reason).
		Msg("Registration failed")
}

func (l *Logger) Logout(ctx context.Context, userID string) {
	l.event(ctx, l.log.Info(), "logout").
		Str("user_id", userID).
		Msg("User logged out")
}

func (l *Logger) ProfileUpdated(ctx context.Context, userID string) {
	l.event(ctx, l.log.Info(), "profile_updated").
		Str("user_id", userID).
		Msg("User profile updated")
}

// maskEmail keeps the first two characters of the local part and the domain.
func maskEmail(email string) string {
	if len(email) < 5 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	switch {
	case at < 0:
		return email[:2] + "***"
	case at < 2:
		return email[:1] + "***" + email[at:]
	default:
		return email[:2] + "***" + email[at:]
	}
}
