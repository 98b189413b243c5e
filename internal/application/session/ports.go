package session

import (
	"context"
	"time"

	"github.com/baechuer/grandveggie/internal/domain"
)

/*
CredentialTable
---------------
Email -> {password, user} lookup used only by login and registration.
Keys are matched exactly (case-sensitive, no normalization).
*/
type CredentialTable interface {
	// Lookup returns domain.ErrInvalidCredentials when the email is absent.
	Lookup(ctx context.Context, email string) (domain.Credential, error)
	// Insert returns domain.ErrEmailAlreadyRegistered when the email exists.
	// The existence check and the insert happen atomically.
	Insert(ctx context.Context, email string, cred domain.Credential) error
}

/*
StateStore
----------
Durable key-value slot holding the serialized session.
Load returns (nil, nil) when the key has never been written.
*/
type StateStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

/*
Clock
-----
Time source for the simulated credential-check delay and event stamps.
*/
type Clock interface {
	After(d time.Duration) <-chan time.Time
	Now() time.Time
}

/*
EventPublisher
--------------
Publishes session lifecycle events (RabbitMQ in prod, logging noop in dev).
Publishing is best-effort; failures never change an operation's result.
*/
type EventPublisher interface {
	PublishSessionEvent(ctx context.Context, evt Event) error
}

type EventType string

const (
	EventLoggedIn       EventType = "session.logged_in"
	EventRegistered     EventType = "session.registered"
	EventLoggedOut      EventType = "session.logged_out"
	EventProfileUpdated EventType = "session.profile_updated"
)

type Event struct {
	Type   EventType   `json:"type"`
	UserID string      `json:"user_id,omitempty"`
	Email  string      `json:"email,omitempty"`
	Role   domain.Role `json:"role,omitempty"`
	At     time.Time   `json:"at"`
}

/*
Auditor
-------
Structured audit trail for session operations.
*/
type Auditor interface {
	LoginSuccess(ctx context.Context, userID, email string)
	LoginFailed(ctx context.Context, email, reason string)
	Registered(ctx context.Context, userID, email string)
	RegisterFailed(ctx context.Context, email, reason string)
	Logout(ctx context.Context, userID string)
	ProfileUpdated(ctx context.Context, userID string)
}
