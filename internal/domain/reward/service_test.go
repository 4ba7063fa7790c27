package reward

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
)

type memRewardRepo struct {
	mu   sync.Mutex
	days map[string]*Day
}

func newMemRewardRepo() *memRewardRepo {
	return &memRewardRepo{days: map[string]*Day{}}
}

func rewardKey(userID uint, date string) string {
	return date + "/" + string(rune('0'+userID))
}

func (r *memRewardRepo) Find(_ context.Context, userID uint, date string) (*Day, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	day, ok := r.days[rewardKey(userID, date)]
	if !ok {
		return nil, nil
	}
	cp := *day
	return &cp, nil
}

func (r *memRewardRepo) ClaimDaily(_ context.Context, userID uint, date string, now time.Time) (*Day, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := rewardKey(userID, date)
	day, ok := r.days[key]
	if !ok {
		day = &Day{UserID: userID, Date: date}
		r.days[key] = day
	}
	if day.DailyCount >= MaxDailyClaims {
		return nil, ErrDailyLimitReached
	}
	if day.LastClaimAt != nil && now.Sub(*day.LastClaimAt) < ClaimCooldown {
		return nil, ErrCooldownActive
	}
	day.DailyCount++
	t := now
	day.LastClaimAt = &t
	cp := *day
	return &cp, nil
}

func (r *memRewardRepo) ClaimSpecial(_ context.Context, userID uint, date string, now time.Time) (*Day, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := rewardKey(userID, date)
	day, ok := r.days[key]
	if !ok {
		day = &Day{UserID: userID, Date: date}
		r.days[key] = day
	}
	if day.SpecialClaimed {
		return nil, ErrAlreadyClaimed
	}
	day.SpecialClaimed = true
	t := now
	day.SpecialClaimedAt = &t
	cp := *day
	return &cp, nil
}

func (r *memRewardRepo) DeleteBefore(_ context.Context, date string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for key, day := range r.days {
		if day.Date < date {
			delete(r.days, key)
			removed++
		}
	}
	return removed, nil
}

type memCreditStore struct {
	mu       sync.Mutex
	balances map[uint]decimal.Decimal
}

func (s *memCreditStore) AddCredits(_ context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balances == nil {
		s.balances = map[uint]decimal.Decimal{}
	}
	s.balances[userID] = s.balances[userID].Add(amount)
	return s.balances[userID], nil
}

type memLedgerRepo struct {
	mu  sync.Mutex
	txs []*credit.Transaction
}

func (r *memLedgerRepo) CreateTransaction(_ context.Context, tx *credit.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, tx)
	return nil
}

func (r *memLedgerRepo) ListTransactions(_ context.Context, _ uint, _, _ int) ([]*credit.Transaction, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.txs, int64(len(r.txs)), nil
}

func (r *memLedgerRepo) CreateToolUsage(_ context.Context, _ *credit.ToolUsage) error {
	return nil
}

func (r *memLedgerRepo) ListToolUsage(_ context.Context, _ uint, _, _ int) ([]*credit.ToolUsage, int64, error) {
	return nil, 0, nil
}

func newTestService() (*Service, *memRewardRepo, *memCreditStore, *memLedgerRepo, *time.Time) {
	repo := newMemRewardRepo()
	store := &memCreditStore{}
	ledger := &memLedgerRepo{}
	svc := NewService(repo, store, credit.NewService(ledger))

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := &now
	svc.nowFn = func() time.Time { return *clock }
	return svc, repo, store, ledger, clock
}

func TestClaimDailyGrantsCredits(t *testing.T) {
	svc, _, store, ledger, _ := newTestService()
	ctx := context.Background()

	res, err := svc.ClaimDaily(ctx, 1)
	if err != nil {
		t.Fatalf("ClaimDaily: %v", err)
	}
	if !res.CreditsEarned.Equal(DailyCreditsPerClaim) {
		t.Errorf("CreditsEarned = %s, want %s", res.CreditsEarned, DailyCreditsPerClaim)
	}
	if res.DailyCount != 1 {
		t.Errorf("DailyCount = %d, want 1", res.DailyCount)
	}
	if !store.balances[1].Equal(DailyCreditsPerClaim) {
		t.Errorf("balance = %s, want %s", store.balances[1], DailyCreditsPerClaim)
	}
	if len(ledger.txs) != 1 || ledger.txs[0].Type != credit.TransactionAdReward {
		t.Errorf("expected one ad_reward ledger entry, got %+v", ledger.txs)
	}
}

func TestClaimDailyCooldown(t *testing.T) {
	svc, _, _, _, clock := newTestService()
	ctx := context.Background()

	if _, err := svc.ClaimDaily(ctx, 1); err != nil {
		t.Fatalf("first claim: %v", err)
	}

	*clock = clock.Add(30 * time.Minute)
	if _, err := svc.ClaimDaily(ctx, 1); !errors.Is(err, ErrCooldownActive) {
		t.Fatalf("claim inside cooldown = %v, want ErrCooldownActive", err)
	}

	*clock = clock.Add(31 * time.Minute)
	if _, err := svc.ClaimDaily(ctx, 1); err != nil {
		t.Fatalf("claim after cooldown: %v", err)
	}
}

func TestClaimDailyLimit(t *testing.T) {
	svc, _, _, _, clock := newTestService()
	ctx := context.Background()

	for i := 0; i < MaxDailyClaims; i++ {
		if _, err := svc.ClaimDaily(ctx, 1); err != nil {
			t.Fatalf("claim %d: %v", i+1, err)
		}
		*clock = clock.Add(ClaimCooldown)
	}

	if _, err := svc.ClaimDaily(ctx, 1); !errors.Is(err, ErrDailyLimitReached) {
		t.Fatalf("claim past limit = %v, want ErrDailyLimitReached", err)
	}
}

func TestClaimCountResetsNextDay(t *testing.T) {
	svc, _, _, _, clock := newTestService()
	ctx := context.Background()

	for i := 0; i < MaxDailyClaims; i++ {
		if _, err := svc.ClaimDaily(ctx, 1); err != nil {
			t.Fatalf("claim %d: %v", i+1, err)
		}
		*clock = clock.Add(ClaimCooldown)
	}

	*clock = clock.Add(24 * time.Hour)
	res, err := svc.ClaimDaily(ctx, 1)
	if err != nil {
		t.Fatalf("claim next day: %v", err)
	}
	if res.DailyCount != 1 {
		t.Errorf("DailyCount = %d, want 1 after reset", res.DailyCount)
	}
}

func TestClaimSpecialOncePerDay(t *testing.T) {
	svc, _, store, _, clock := newTestService()
	ctx := context.Background()

	res, err := svc.ClaimSpecial(ctx, 1)
	if err != nil {
		t.Fatalf("ClaimSpecial: %v", err)
	}
	if !res.CreditsEarned.Equal(SpecialCredits) {
		t.Errorf("CreditsEarned = %s, want %s", res.CreditsEarned, SpecialCredits)
	}
	if !store.balances[1].Equal(SpecialCredits) {
		t.Errorf("balance = %s, want %s", store.balances[1], SpecialCredits)
	}

	if _, err := svc.ClaimSpecial(ctx, 1); !errors.Is(err, ErrAlreadyClaimed) {
		t.Fatalf("second special claim = %v, want ErrAlreadyClaimed", err)
	}

	*clock = clock.Add(24 * time.Hour)
	if _, err := svc.ClaimSpecial(ctx, 1); err != nil {
		t.Fatalf("special claim next day: %v", err)
	}
}

func TestStatusReportsCooldown(t *testing.T) {
	svc, _, _, _, clock := newTestService()
	ctx := context.Background()

	st, err := svc.Status(ctx, 1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.CanClaimDaily || !st.CanClaimSpecial {
		t.Fatalf("fresh status = %+v, want everything claimable", st)
	}

	if _, err := svc.ClaimDaily(ctx, 1); err != nil {
		t.Fatalf("ClaimDaily: %v", err)
	}
	*clock = clock.Add(15 * time.Minute)

	st, err = svc.Status(ctx, 1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.CanClaimDaily {
		t.Error("CanClaimDaily = true inside cooldown")
	}
	want := int((ClaimCooldown - 15*time.Minute).Seconds())
	if st.CooldownRemaining != want {
		t.Errorf("CooldownRemaining = %d, want %d", st.CooldownRemaining, want)
	}
	if st.DailyCount != 1 {
		t.Errorf("DailyCount = %d, want 1", st.DailyCount)
	}
}

func TestStatusBlocksAtDailyLimit(t *testing.T) {
	svc, _, _, _, clock := newTestService()
	ctx := context.Background()

	for i := 0; i < MaxDailyClaims; i++ {
		if _, err := svc.ClaimDaily(ctx, 1); err != nil {
			t.Fatalf("claim %d: %v", i+1, err)
		}
		*clock = clock.Add(ClaimCooldown)
	}

	st, err := svc.Status(ctx, 1)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if st.CanClaimDaily {
		t.Error("CanClaimDaily = true at daily limit")
	}
	if st.CooldownRemaining != 0 {
		t.Errorf("CooldownRemaining = %d, want 0 when limit reached", st.CooldownRemaining)
	}
}

func TestCleanupBeforeDropsOldDays(t *testing.T) {
	svc, repo, _, _, clock := newTestService()
	ctx := context.Background()

	if _, err := svc.ClaimDaily(ctx, 1); err != nil {
		t.Fatalf("old claim: %v", err)
	}

	*clock = clock.Add(60 * 24 * time.Hour)
	if _, err := svc.ClaimDaily(ctx, 1); err != nil {
		t.Fatalf("recent claim: %v", err)
	}

	removed, err := svc.CleanupBefore(ctx, 30*24*time.Hour)
	if err != nil {
		t.Fatalf("CleanupBefore: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if len(repo.days) != 1 {
		t.Errorf("remaining days = %d, want 1", len(repo.days))
	}
}
