package session

import (
	"context"
	"fmt"
	"time"

	"aitoolhub-server/services/hub-api/internal/utils/idgen"
)

const (
	// DefaultTTL is the sliding session lifetime.
	DefaultTTL = 24 * time.Hour
	// RememberTTL is the lifetime granted by "remember me".
	RememberTTL = 30 * 24 * time.Hour
)

// Service manages session lifecycle over a Store.
type Service struct {
	store       Store
	ttl         time.Duration
	rememberTTL time.Duration
}

// NewService creates a session service. Zero durations fall back to the
// package defaults.
func NewService(store Store, ttl, rememberTTL time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if rememberTTL <= 0 {
		rememberTTL = RememberTTL
	}
	return &Service{store: store, ttl: ttl, rememberTTL: rememberTTL}
}

// Create issues a new session token for a user.
func (s *Service) Create(ctx context.Context, userID uint, remember bool) (*Session, error) {
	token, err := idgen.GenerateSessionToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	ttl := s.ttl
	if remember {
		ttl = s.rememberTTL
	}

	now := time.Now()
	sess := &Session{
		Token:     token,
		UserID:    userID,
		TTL:       ttl,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.store.Set(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Resolve looks up a token and slides its expiry window. Returns
// ErrNotFound for missing or expired sessions.
func (s *Service) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotFound
	}
	return s.store.Refresh(ctx, token)
}

// Destroy removes a session.
func (s *Service) Destroy(ctx context.Context, token string) error {
	return s.store.Delete(ctx, token)
}

// SweepExpired removes expired sessions from the store.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	return s.store.DeleteExpired(ctx)
}
