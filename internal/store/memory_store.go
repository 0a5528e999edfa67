package store

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/oauth2"
)

// MemoryStore keeps a single token in process memory. Set replaces it.
// Nothing survives a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	token *oauth2.Token
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context) (*oauth2.Token, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == nil {
		return nil, ErrNoCredentials
	}
	tok := *s.token
	return &tok, nil
}

func (s *MemoryStore) Set(_ context.Context, token *oauth2.Token) error {
	if token == nil {
		return errors.New("token is nil")
	}
	tok := *token
	s.mu.Lock()
	s.token = &tok
	s.mu.Unlock()
	return nil
}
