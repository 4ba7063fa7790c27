package sessionstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"aitoolhub-server/services/hub-api/internal/domain/session"
)

func TestMemoryStoreGetExpiredDeletes(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.nowFn = func() time.Time { return now }

	sess := &session.Session{
		Token:     "tok_a",
		UserID:    1,
		TTL:       time.Hour,
		ExpiresAt: now.Add(time.Hour),
		CreatedAt: now,
	}
	if err := store.Set(context.Background(), sess); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := store.Get(context.Background(), "tok_a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.UserID != 1 {
		t.Fatalf("unexpected user %d", got.UserID)
	}

	// Advance past expiry: the entry must be gone and stay gone.
	now = now.Add(2 * time.Hour)
	if _, err := store.Get(context.Background(), "tok_a"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if removed, _ := store.DeleteExpired(context.Background()); removed != 0 {
		t.Fatalf("entry should already be removed, sweep found %d", removed)
	}
}

func TestMemoryStoreRefreshSlidesByOwnTTL(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.nowFn = func() time.Time { return now }

	rememberTTL := 720 * time.Hour
	sess := &session.Session{
		Token:     "tok_b",
		UserID:    2,
		TTL:       rememberTTL,
		ExpiresAt: now.Add(rememberTTL),
		CreatedAt: now,
	}
	if err := store.Set(context.Background(), sess); err != nil {
		t.Fatalf("set: %v", err)
	}

	now = now.Add(24 * time.Hour)
	refreshed, err := store.Refresh(context.Background(), "tok_b")
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if want := now.Add(rememberTTL); !refreshed.ExpiresAt.Equal(want) {
		t.Fatalf("expected expiry %v, got %v", want, refreshed.ExpiresAt)
	}
}

func TestMemoryStoreRefreshMissing(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.Refresh(context.Background(), "tok_missing"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreDeleteExpired(t *testing.T) {
	store := NewMemoryStore()
	now := time.Now()
	store.nowFn = func() time.Time { return now }

	for _, tok := range []string{"tok_1", "tok_2"} {
		store.Set(context.Background(), &session.Session{
			Token:     tok,
			UserID:    1,
			TTL:       time.Minute,
			ExpiresAt: now.Add(time.Minute),
		})
	}
	store.Set(context.Background(), &session.Session{
		Token:     "tok_live",
		UserID:    1,
		TTL:       time.Hour,
		ExpiresAt: now.Add(time.Hour),
	})

	now = now.Add(10 * time.Minute)
	removed, err := store.DeleteExpired(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if _, err := store.Get(context.Background(), "tok_live"); err != nil {
		t.Fatalf("live session should survive sweep: %v", err)
	}
}
