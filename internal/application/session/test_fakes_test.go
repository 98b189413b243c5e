package session

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/baechuer/grandveggie/internal/domain"
)

/*
Fakes for ports
*/

type fakeCreds struct {
	mu      sync.Mutex
	byEmail map[string]domain.Credential

	lookupErr error
	insertErr error
}

func newFakeCreds() *fakeCreds {
	return &fakeCreds{byEmail: map[string]domain.Credential{
		"admin@grandveggie.com": {
			Password: "admin123",
			User: domain.User{
				ID:    "1",
				Email: "admin@grandveggie.com",
				Name:  "Admin User",
				Role:  domain.RoleAdmin,
			},
		},
	}}
}

func (f *fakeCreds) Lookup(ctx context.Context, email string) (domain.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.lookupErr != nil {
		return domain.Credential{}, f.lookupErr
	}
	c, ok := f.byEmail[email]
	if !ok {
		return domain.Credential{}, domain.ErrInvalidCredentials()
	}
	return c, nil
}

func (f *fakeCreds) Insert(ctx context.Context, email string, cred domain.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.insertErr != nil {
		return f.insertErr
	}
	if _, ok := f.byEmail[email]; ok {
		return domain.ErrEmailAlreadyRegistered()
	}
	f.byEmail[email] = cred
	return nil
}

func (f *fakeCreds) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byEmail)
}

type fakeState struct {
	mu    sync.Mutex
	data  map[string][]byte
	saves int

	loadErr error
	saveErr error
}

func newFakeState() *fakeState {
	return &fakeState{data: map[string][]byte{}}
}

func (f *fakeState) Load(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.loadErr != nil {
		return nil, f.loadErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (f *fakeState) Save(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[key] = append([]byte(nil), value...)
	f.saves++
	return nil
}

func (f *fakeState) get(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key]
}

// fakeNow is the wall time reported by the test clocks.
var fakeNow = time.Date(2030, 1, 2, 19, 0, 0, 0, time.FixedZone("CET", 3600))

// manualClock hands out channels that fire only on release.
type manualClock struct {
	mu      sync.Mutex
	waiters []chan time.Time
}

func (c *manualClock) Now() time.Time { return fakeNow }

func (c *manualClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	c.waiters = append(c.waiters, ch)
	return ch
}

func (c *manualClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.waiters)
}

// releaseOne fires the oldest waiter.
func (c *manualClock) releaseOne() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.waiters) == 0 {
		return
	}
	c.waiters[0] <- time.Now()
	c.waiters = c.waiters[1:]
}

// waitFor blocks until n waiters are parked on the clock.
func (c *manualClock) waitFor(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for c.pending() < n {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d clock waiters, have %d", n, c.pending())
		}
		time.Sleep(time.Millisecond)
	}
}

type instantClock struct{}

func (instantClock) Now() time.Time { return fakeNow }

func (instantClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

type fakeEvents struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (f *fakeEvents) PublishSessionEvent(ctx context.Context, evt Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, evt)
	return f.err
}

func (f *fakeEvents) types() []EventType {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]EventType, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

/*
Shared audit capture
*/

type auditEntry struct {
	action string
	fields map[string]string
}

type fakeAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (f *fakeAudit) add(action string, kv ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fields := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		fields[kv[i]] = kv[i+1]
	}
	f.entries = append(f.entries, auditEntry{action: action, fields: fields})
}

func (f *fakeAudit) LoginSuccess(_ context.Context, userID, email string) {
	f.add("login_success", "user_id", userID, "email", email)
}
func (f *fakeAudit) LoginFailed(_ context.Context, email, reason string) {
	f.add("login_failed", "email", email, "reason", reason)
}
func (f *fakeAudit) Registered(_ context.Context, userID, email string) {
	f.add("registered", "user_id", userID, "email", email)
}
func (f *fakeAudit) RegisterFailed(_ context.Context, email, reason string) {
	f.add("register_failed", "email", email, "reason", reason)
}
func (f *fakeAudit) Logout(_ context.Context, userID string) {
	f.add("logout", "user_id", userID)
}
func (f *fakeAudit) ProfileUpdated(_ context.Context, userID string) {
	f.add("profile_updated", "user_id", userID)
}

func (f *fakeAudit) last() auditEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.entries) == 0 {
		return auditEntry{}
	}
	return f.entries[len(f.entries)-1]
}

/*
Store under test
*/

type harness struct {
	store  *Store
	creds  *fakeCreds
	state  *fakeState
	events *fakeEvents
	audit  *fakeAudit
}

func newHarness(t *testing.T, clock Clock) *harness {
	t.Helper()
	return newHarnessWithState(t, clock, newFakeState())
}

func newHarnessWithState(t *testing.T, clock Clock, state *fakeState) *harness {
	t.Helper()

	h := &harness{
		creds:  newFakeCreds(),
		state:  state,
		events: &fakeEvents{},
		audit:  &fakeAudit{},
	}
	var n atomic.Int64
	n.Store(1000)
	st, err := NewStore(context.Background(), Deps{
		Credentials: h.creds,
		State:       h.state,
		Clock:       clock,
		Events:      h.events,
		Audit:       h.audit,
		NewID: func() string {
			return "u-" + strconv.FormatInt(n.Add(1), 10)
		},
		Log: zerolog.Nop(),
	}, Config{})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	h.store = st
	return h
}

func requireErrCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error code=%q, got nil", code)
	}
	if !domain.Is(err, code) {
		t.Fatalf("expected code=%q, got err=%v", code, err)
	}
}

func requireAnonymous(t *testing.T, s domain.Session) {
	t.Helper()
	if s.User != nil || s.IsAuthenticated {
		t.Fatalf("expected anonymous session, got %+v", s)
	}
}
