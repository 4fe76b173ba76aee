package session

import (
	"context"
	"sync"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps the credential in memory only. Used by tests and
// for one-shot invocations with ILFC_TOKEN.
type MemoryStore struct {
	mu   sync.Mutex
	cred *Credential
}

func NewMemoryStore(initial *Credential) *MemoryStore {
	s := &MemoryStore{}
	if initial != nil {
		c := *initial
		s.cred = &c
	}
	return s
}

func (s *MemoryStore) Load(_ context.Context) (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil, ErrNoCredential
	}
	c := *s.cred
	return &c, nil
}

func (s *MemoryStore) Save(_ context.Context, cred *Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *cred
	s.cred = &c
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	return nil
}
