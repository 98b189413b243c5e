package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/baechuer/grandveggie/internal/application/session"
)

// NoopPublisher logs session events instead of sending them anywhere.
type NoopPublisher struct {
	log zerolog.Logger
}

func NewNoopPublisher(lg zerolog.Logger) *NoopPublisher {
	return &NoopPublisher{log: lg.With().Str("component", "noop_publisher").Logger()}
}

func (p *NoopPublisher) PublishSessionEvent(ctx context.Context, evt session.Event) error {
	p.log.Debug().
		Str("type", string(evt.Type)).
		Str("user_id", evt.UserID).
		Time("at", evt.At).
		Msg("session event")
	return nil
}
