// Package session holds the "currently logged in" identities.
//
// There are four independent slots: an administrator flag and one record
// slot each for a client, a candidate and an agent. Each slot is persisted
// under its own key in a kv.Store and rehydrated on its own, so a corrupt
// value logs that one slot out without touching the others.
//
// A record slot stores a copy of the row taken at login time. It is never
// joined against the table it came from and does not follow later edits to
// that row.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/roach88/recruitdb/internal/kv"
	"github.com/roach88/recruitdb/internal/model"
)

// Role names one slot.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleClient    Role = "client"
	RoleCandidate Role = "candidate"
	RoleAgent     Role = "agent"
)

// Roles lists every slot.
var Roles = []Role{RoleAdmin, RoleClient, RoleCandidate, RoleAgent}

// ParseRole validates a role name.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown session role %q", s)
}

// Durable keys.
const (
	KeyAdmin     = "recruitdb.session.admin"
	KeyClient    = "recruitdb.session.client"
	KeyCandidate = "recruitdb.session.candidate"
	KeyAgent     = "recruitdb.session.agent"
)

const adminFlag = "true"

// Slot holds at most one record of type T.
type Slot[T any] struct {
	key    string
	kv     kv.Store
	logger *slog.Logger

	mu    sync.RWMutex
	value *T
}

func newSlot[T any](key string, store kv.Store, logger *slog.Logger) *Slot[T] {
	return &Slot[T]{key: key, kv: store, logger: logger}
}

// load rehydrates the slot. Missing or unparseable content leaves it empty.
func (s *Slot[T]) load(ctx context.Context) {
	raw, ok, err := s.kv.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("session slot unreadable, starting logged out", "key", s.key, "error", err)
		return
	}
	if !ok {
		return
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("session slot corrupt, starting logged out", "key", s.key, "error", err)
		return
	}
	s.mu.Lock()
	s.value = &v
	s.mu.Unlock()
}

// Get returns a copy of the stored record.
func (s *Slot[T]) Get() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.value == nil {
		var zero T
		return zero, false
	}
	return *s.value, true
}

// Set stores a copy of v and persists it. The in-memory slot only changes
// once the durable write succeeded.
func (s *Slot[T]) Set(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session %s: encode: %w", s.key, err)
	}
	// Round-trip so the slot never aliases the caller's slices or pointers.
	var cp T
	if err := json.Unmarshal(data, &cp); err != nil {
		return fmt.Errorf("session %s: copy: %w", s.key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Put(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("session %s: %w", s.key, err)
	}
	s.value = &cp
	return nil
}

// Clear empties the slot and removes its durable key.
func (s *Slot[T]) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("session %s: %w", s.key, err)
	}
	s.value = nil
	return nil
}

// Store groups the four slots.
type Store struct {
	kv     kv.Store
	logger *slog.Logger

	mu    sync.RWMutex
	admin bool

	Client    *Slot[model.Client]
	Candidate *Slot[model.Candidate]
	Agent     *Slot[model.Agent]
}

// Open rehydrates every slot from store. It never fails: a slot that cannot
// be read starts logged out.
func Open(ctx context.Context, store kv.Store, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		kv:        store,
		logger:    logger,
		Client:    newSlot[model.Client](KeyClient, store, logger),
		Candidate: newSlot[model.Candidate](KeyCandidate, store, logger),
		Agent:     newSlot[model.Agent](KeyAgent, store, logger),
	}

	raw, ok, err := store.Get(ctx, KeyAdmin)
	switch {
	case err != nil:
		logger.Warn("admin flag unreadable, starting logged out", "error", err)
	case ok && raw == adminFlag:
		s.admin = true
	case ok:
		logger.Warn("admin flag has unexpected value, starting logged out", "value", raw)
	}

	s.Client.load(ctx)
	s.Candidate.load(ctx)
	s.Agent.load(ctx)
	return s
}

// IsAdmin reports whether the administrator flag is set.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.admin
}

// LoginAdmin sets the administrator flag.
func (s *Store) LoginAdmin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Put(ctx, KeyAdmin, adminFlag); err != nil {
		return fmt.Errorf("session admin: %w", err)
	}
	s.admin = true
	return nil
}

// LogoutAdmin clears the administrator flag.
func (s *Store) LogoutAdmin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, KeyAdmin); err != nil {
		return fmt.Errorf("session admin: %w", err)
	}
	s.admin = false
	return nil
}

// Logout clears one slot by role.
func (s *Store) Logout(ctx context.Context, role Role) error {
	switch role {
	case RoleAdmin:
		return s.LogoutAdmin(ctx)
	case RoleClient:
		return s.Client.Clear(ctx)
	case RoleCandidate:
		return s.Candidate.Clear(ctx)
	case RoleAgent:
		return s.Agent.Clear(ctx)
	}
	return fmt.Errorf("unknown session role %q", role)
}

// State is a point-in-time view of all four slots.
type State struct {
	Admin     bool             `json:"admin"`
	Client    *model.Client    `json:"client,omitempty"`
	Candidate *model.Candidate `json:"candidate,omitempty"`
	Agent     *model.Agent     `json:"agent,omitempty"`
}

// State returns copies of all slots.
func (s *Store) State() State {
	st := State{Admin: s.IsAdmin()}
	if c, ok := s.Client.Get(); ok {
		st.Client = &c
	}
	if c, ok := s.Candidate.Get(); ok {
		st.Candidate = &c
	}
	if a, ok := s.Agent.Get(); ok {
		st.Agent = &a
	}
	return st
}
