package memory

import (
	"context"
	"sync"

	"github.com/baechuer/grandveggie/internal/domain"
)

// CredentialTable is the in-process email -> credential map.
// It is seeded at construction and lives only as long as the process.
type CredentialTable struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Credential
}

// NewCredentialTable copies seed into a fresh table. Later seed entries
// with a duplicate email are ignored.
func NewCredentialTable(seed []domain.Credential) *CredentialTable {
	t := &CredentialTable{byEmail: make(map[string]domain.Credential, len(seed))}
	for _, c := range seed {
		if _, exists := t.byEmail[c.User.Email]; exists {
			continue
		}
		t.byEmail[c.User.Email] = c
	}
	return t
}

func (t *CredentialTable) Lookup(ctx context.Context, email string) (domain.Credential, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c, ok := t.byEmail[email]
	if !ok {
		return domain.Credential{}, domain.ErrInvalidCredentials()
	}
	return c, nil
}

func (t *CredentialTable) Insert(ctx context.Context, email string, cred domain.Credential) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byEmail[email]; exists {
		return domain.ErrEmailAlreadyRegistered()
	}
	if cred.User.ID == "" {
		return domain.ErrInternal(nil)
	}
	t.byEmail[email] = cred
	return nil
}

func (t *CredentialTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byEmail)
}
