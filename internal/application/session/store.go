package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/baechuer/grandveggie/internal/domain"
)

const (
	// StorageKey names the durable slot the session is persisted under.
	StorageKey = "auth-storage"

	// DefaultDelay is the simulated credential-check latency.
	DefaultDelay = time.Second
)

// Store is the single owner and writer of the session state.
//
// Mutations are serialized by mu for memory safety only: overlapping logins
// are racing writers and the last one to complete wins.
type Store struct {
	creds  CredentialTable
	state  StateStore
	clock  Clock
	events EventPublisher
	audit  Auditor
	newID  func() string
	log    zerolog.Logger

	delay time.Duration
	key   string

	mu      sync.Mutex
	user    *domain.User
	loading bool
	seq     uint64

	persistMu sync.Mutex
	persisted uint64

	subsMu  sync.Mutex
	subs    map[int]func(domain.Session)
	nextSub int

	notifyMu sync.Mutex
	notified uint64
}

type Deps struct {
	Credentials CredentialTable
	State       StateStore
	Clock       Clock
	Events      EventPublisher
	Audit       Auditor
	NewID       func() string
	Log         zerolog.Logger
}

type Config struct {
	Delay      time.Duration
	StorageKey string
}

// NewStore builds a store and restores the persisted session, if any.
// An unreadable slot is an error; an undecodable value is logged and
// replaced by the anonymous session.
func NewStore(ctx context.Context, deps Deps, cfg Config) (*Store, error) {
	if deps.Credentials == nil {
		return nil, domain.ErrInternal(errNilDep("credentials"))
	}
	if deps.State == nil {
		return nil, domain.ErrInternal(errNilDep("state"))
	}

	s := &Store{
		creds:  deps.Credentials,
		state:  deps.State,
		clock:  deps.Clock,
		events: deps.Events,
		audit:  deps.Audit,
		newID:  deps.NewID,
		log:    deps.Log,
		delay:  cfg.Delay,
		key:    cfg.StorageKey,
		subs:   make(map[int]func(domain.Session)),
	}
	if s.clock == nil {
		s.clock = SystemClock{}
	}
	if s.events == nil {
		s.events = nopEvents{}
	}
	if s.audit == nil {
		s.audit = nopAudit{}
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	if s.delay <= 0 {
		s.delay = DefaultDelay
	}
	if s.key == "" {
		s.key = StorageKey
	}

	if err := s.restore(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewSession(s.user, s.loading)
}

// Subscribe registers fn to be called with the new state after every change.
// Deliveries are serialized and never go backwards: a state older than one
// already delivered is dropped. fn must not mutate the store.
// The returned func removes the subscription.
func (s *Store) Subscribe(fn func(domain.Session)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

// update runs mutate under the state lock. When mutate reports a change the
// new state is persisted and broadcast to subscribers.
func (s *Store) update(ctx context.Context, mutate func() bool) domain.Session {
	s.mu.Lock()
	if !mutate() {
		snap := domain.NewSession(s.user, s.loading)
		s.mu.Unlock()
		return snap
	}
	s.seq++
	seq := s.seq
	snap := domain.NewSession(s.user, s.loading)
	s.mu.Unlock()

	s.persist(context.WithoutCancel(ctx), seq, snap)
	s.notify(seq, snap)
	return snap
}

// persist writes snap unless a newer state has already been written.
// Failures are logged; the in-memory state stays authoritative.
func (s *Store) persist(ctx context.Context, seq uint64, snap domain.Session) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if seq <= s.persisted {
		return
	}
	raw, err := EncodeSession(snap)
	if err != nil {
		s.log.Error().Err(err).Msg("session encode failed")
		return
	}
	if err := s.state.Save(ctx, s.key, raw); err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("session persist failed")
		return
	}
	s.persisted = seq
}

// notify delivers snap unless a newer state has already been delivered.
func (s *Store) notify(seq uint64, snap domain.Session) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	if seq <= s.notified {
		return
	}
	s.notified = seq

	s.subsMu.Lock()
	fns := make([]func(domain.Session), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

func (s *Store) restore(ctx context.Context) error {
	raw, err := s.state.Load(ctx, s.key)
	if err != nil {
		return domain.ErrStorageUnavailable(err)
	}
	if raw == nil {
		return nil
	}

	snap, err := DecodeSession(raw)
	if err != nil {
		s.log.Warn().Err(err).Str("key", s.key).Msg("persisted session unreadable; starting anonymous")
		return nil
	}

	s.mu.Lock()
	s.user = snap.User
	s.loading = false
	s.mu.Unlock()

	if snap.User != nil {
		s.log.Info().Str("user_id", snap.User.ID).Msg("session restored")
	}
	return nil
}

// wait is the simulated credential check. It is the only point where an
// operation yields; no lock is held while waiting.
func (s *Store) wait(ctx context.Context) error {
	select {
	case <-s.clock.After(s.delay):
		return nil
	case <-ctx.Done():
		return domain.ErrCanceled(ctx.Err())
	}
}

// settle clears the pending flag without touching the user.
func (s *Store) settle(ctx context.Context) {
	s.update(ctx, func() bool {
		if !s.loading {
			return false
		}
		s.loading = false
		return true
	})
}

func (s *Store) publish(ctx context.Context, typ EventType, u domain.User) {
	evt := Event{
		Type:   typ,
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		At:     s.clock.Now().UTC(),
	}
	if err := s.events.PublishSessionEvent(context.WithoutCancel(ctx), evt); err != nil {
		s.log.Warn().Err(err).Str("event", string(typ)).Msg("session event publish failed")
	}
}

type nilDepError string

func (e nilDepError) Error() string { return "session: nil " + string(e) }

func errNilDep(name string) error { return nilDepError(name) }

type nopEvents struct{}

func (nopEvents) PublishSessionEvent(context.Context, Event) error { return nil }

type nopAudit struct{}

func (nopAudit) LoginSuccess(context.Context, string, string)   {}
func (nopAudit) LoginFailed(context.Context, string, string)    {}
func (nopAudit) Registered(context.Context, string, string)     {}
func (nopAudit) RegisterFailed(context.Context, string, string) {}
func (nopAudit) Logout(context.Context, string)                 {}
func (nopAudit) ProfileUpdated(context.Context, string)         {}
