package sessionstore

import (
	"context"
	"sync"
	"time"

	"aitoolhub-server/services/hub-api/internal/domain/session"
)

// MemoryStore is a mutex-guarded in-process session store for single-node
// deployments and tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]session.Session
	nowFn    func() time.Time
}

var _ session.Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]session.Session),
		nowFn:    time.Now,
	}
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	if s.nowFn().After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, session.ErrNotFound
	}
	out := sess
	return &out, nil
}

func (s *MemoryStore) Set(ctx context.Context, sess *session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = *sess
	return nil
}

func (s *MemoryStore) Refresh(ctx context.Context, token string) (*session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]
	now := s.nowFn()
	if !ok || now.After(sess.ExpiresAt) {
		delete(s.sessions, token)
		return nil, session.ErrNotFound
	}
	sess.ExpiresAt = now.Add(sess.TTL)
	s.sessions[token] = sess
	out := sess
	return &out, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *MemoryStore) DeleteExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.nowFn()
	removed := 0
	for token, sess := range s.sessions {
		if now.After(sess.ExpiresAt) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}
