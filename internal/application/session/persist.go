package session

import (
	"encoding/json"
	"fmt"

	"github.com/baechuer/grandveggie/internal/domain"
)

const persistVersion = 0

type persistedState struct {
	State struct {
		User            *domain.User `json:"user"`
		IsAuthenticated bool         `json:"isAuthenticated"`
		IsLoading       bool         `json:"isLoading"`
	} `json:"state"`
	Version int `json:"version"`
}

// EncodeSession serializes s in the persisted envelope.
// The pending flag is never persisted as true.
func EncodeSession(s domain.Session) ([]byte, error) {
	var p persistedState
	p.State.User = s.User
	p.State.IsAuthenticated = s.User != nil
	p.Version = persistVersion
	return json.Marshal(p)
}

// DecodeSession parses a persisted envelope. isAuthenticated is recomputed
// from the user so a hand-edited value cannot break the invariant.
func DecodeSession(raw []byte) (domain.Session, error) {
	var p persistedState
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.Session{}, fmt.Errorf("decode session: %w", err)
	}
	if p.Version != persistVersion {
		return domain.Session{}, fmt.Errorf("decode session: unsupported version %d", p.Version)
	}
	if u := p.State.User; u != nil && u.ID == "" {
		return domain.Session{}, fmt.Errorf("decode session: user without id")
	}
	return domain.NewSession(p.State.User, false), nil
}
