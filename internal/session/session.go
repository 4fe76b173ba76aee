package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrNoCredential is returned by stores that hold no credential.
var ErrNoCredential = fmt.Errorf("no stored credential")

// Credential is the active session of the admin tool.
// RefreshToken is optional, some deployments never issue one.
type Credential struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Store persists the credential between process runs.
type Store interface {
	Load(ctx context.Context) (*Credential, error)
	Save(ctx context.Context, cred *Credential) error
	Clear(ctx context.Context) error
}

// State owns the single active credential of the process.
// All writes go through Set/Clear so the durable store stays in sync.
type State struct {
	mu    sync.RWMutex
	cred  *Credential
	store Store
}

// New returns an empty state backed by the given store (may be nil).
func New(store Store) *State {
	return &State{store: store}
}

// Open creates a state and restores the credential from the store, if any.
func Open(ctx context.Context, store Store) (*State, error) {
	s := New(store)
	if store == nil {
		return s, nil
	}
	cred, err := store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNoCredential) {
			return s, nil
		}
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if cred != nil && cred.AccessToken != "" {
		s.cred = cred
	}
	return s, nil
}

// Credential returns a copy of the active credential or nil.
func (s *State) Credential() *Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return nil
	}
	c := *s.cred
	return &c
}

func (s *State) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return ""
	}
	return s.cred.AccessToken
}

func (s *State) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return ""
	}
	return s.cred.RefreshToken
}

// Authenticated reports whether an access token is held.
func (s *State) Authenticated() bool {
	return s.AccessToken() != ""
}

// Set replaces the active credential. A nil or empty credential clears the session.
func (s *State) Set(ctx context.Context, cred *Credential) error {
	if cred == nil || cred.AccessToken == "" {
		return s.Clear(ctx)
	}
	c := *cred

	s.mu.Lock()
	s.cred = &c
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Save(ctx, &c); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

// Clear drops the active credential in memory and in the store.
func (s *State) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cred = nil
	s.mu.Unlock()

	if s.store == nil {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}
