package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned for missing or expired sessions.
var ErrNotFound = errors.New("session not found")

// Session maps an opaque token to a user with a time-boxed expiry. TTL is
// stored per session so sliding refresh preserves the "remember me" window.
type Session struct {
	Token     string
	UserID    uint
	TTL       time.Duration
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Store is the shared session store. Implementations must make the
// read-refresh sequence atomic per key.
type Store interface {
	// Get returns the session for a token, ErrNotFound when missing or
	// expired. Expired entries are deleted on read.
	Get(ctx context.Context, token string) (*Session, error)

	// Set writes a session with its expiry.
	Set(ctx context.Context, s *Session) error

	// Refresh atomically extends a live session by its own TTL, returning
	// the refreshed session or ErrNotFound.
	Refresh(ctx context.Context, token string) (*Session, error)

	// Delete removes a session; deleting a missing token is not an error.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes expired sessions, returning the count. Stores
	// with native expiry (Redis) may return 0 without scanning.
	DeleteExpired(ctx context.Context) (int, error)
}
