package session

import (
	"context"
	"errors"
	"testing"

	"github.com/baechuer/grandveggie/internal/domain"
)

func TestRegister_NewEmail_SignsInAsUser(t *testing.T) {
	t.Parallel()

	h := newHarness(t, instantClock{})
	ctx := context.Background()

	if err := h.store.Register(ctx, "Jane", "jane@x.com", "pw"); err != nil {
		t.Fatalf("register: %v", err)
	}

	s := h.store.Snapshot()
	if !s.IsAuthenticated || s.IsLoading {
		t.Fatalf("unexpected state %+v", s)
	}
	if s.User.Name != "Jane" || s.User.Email != "jane@x.com" || s.User.Role != domain.RoleUser {
		t.Fatalf("unexpected user %+v", s.User)
	}
	if s.User.ID == "" || s.User.ID == "1" {
		t.Fatalf("expected fresh id, got %q", s.User.ID)
	}
	if got := h.events.types(); len(got) != 1 || got[0] != EventRegistered {
		t.Fatalf("expected registered event, got %v", got)
	}

	// the new entry is usable for login
	h.store.Logout(ctx)
	if err := h.store.Login(ctx, "jane@x.com", "pw"); err != nil {
		t.Fatalf("login after register: %v", err)
	}
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	t.Parallel()

	h := newHarness(t, instantClock{})
	before := h.creds.len()

	err := h.store.Register(context.Background(), "X", "admin@grandveggie.com", "x")
	requireErrCode(t, err, "email_already_registered")
	if domain.Message(err) != "Email already registered" {
		t.Fatalf("unexpected message %q", domain.Message(err))
	}
	if h.creds.len() != before {
		t.Fatalf("table changed on duplicate register")
	}

	s := h.store.Snapshot()
	requireAnonymous(t, s)
	if s.IsLoading {
		t.Fatalf("expected loading cleared")
	}
	if e := h.audit.last(); e.action != "register_failed" || e.fields["reason"] != "email_already_registered" {
		t.Fatalf("unexpected audit %+v", e)
	}
}

func TestRegister_DistinctIDs(t *testing.T) {
	t.Parallel()

	h := newHarness(t, instantClock{})
	ctx := context.Background()

	if err := h.store.Register(ctx, "A", "a@x.com", "pw"); err != nil {
		t.Fatalf("register a: %v", err)
	}
	a := h.store.Snapshot().User.ID
	if err := h.store.Register(ctx, "B", "b@x.com", "pw"); err != nil {
		t.Fatalf("register b: %v", err)
	}
	b := h.store.Snapshot().User.ID
	if a == b {
		t.Fatalf("expected distinct ids, both %q", a)
	}
}

func TestRegister_InsertInfraError_Propagates(t *testing.T) {
	t.Parallel()

	h := newHarness(t, instantClock{})
	h.creds.insertErr = domain.ErrStorageUnavailable(errors.New("down"))

	err := h.store.Register(context.Background(), "A", "a@x.com", "pw")
	requireErrCode(t, err, "storage_unavailable")
	requireAnonymous(t, h.store.Snapshot())
}

func TestRegister_Canceled_NoInsert(t *testing.T) {
	t.Parallel()

	clk := &manualClock{}
	h := newHarness(t, clk)
	before := h.creds.len()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.store.Register(ctx, "A", "a@x.com", "pw") }()

	clk.waitFor(t, 1)
	cancel()

	requireErrCode(t, <-done, "canceled")
	if h.creds.len() != before {
		t.Fatalf("expected no insert after cancel")
	}
	if h.store.Snapshot().IsLoading {
		t.Fatalf("expected loading cleared")
	}
}
