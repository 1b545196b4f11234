package storage

import (
	"context"
	"sync"

	"github.com/Brayan008/cuack-stores/internal/entity"
)

// MemorySessionStore is a process-local SessionStore. Used in tests and when
// no redis address is configured.
type MemorySessionStore struct {
	mu    sync.Mutex
	token string
	user  *entity.User
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{}
}

func (s *MemorySessionStore) SaveToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemorySessionStore) SaveUser(_ context.Context, user entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := user
	s.user = &u
	return nil
}

func (s *MemorySessionStore) Load(_ context.Context) (string, *entity.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" || s.user == nil {
		return "", nil, false, nil
	}
	u := *s.user
	return s.token, &u, true, nil
}

func (s *MemorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
	return nil
}

var _ SessionStore = (*MemorySessionStore)(nil)
