package reward

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/infrastructure/logger"
)

// CreditStore is the slice of the user store the reward service needs.
type CreditStore interface {
	AddCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error)
}

// Status reports what a user can currently claim.
type Status struct {
	DailyCount        int             `json:"daily_count"`
	CanClaimDaily     bool            `json:"can_claim_daily"`
	CooldownRemaining int             `json:"cooldown_remaining_seconds"`
	SpecialClaimed    bool            `json:"special_claimed"`
	CanClaimSpecial   bool            `json:"can_claim_special"`
	DailyReward       decimal.Decimal `json:"daily_reward"`
	SpecialReward     decimal.Decimal `json:"special_reward"`
}

// ClaimResult is the outcome of a successful claim.
type ClaimResult struct {
	CreditsEarned decimal.Decimal `json:"credits_earned"`
	Balance       decimal.Decimal `json:"current_credits"`
	DailyCount    int             `json:"daily_progress,omitempty"`
}

// Service implements ad-reward bookkeeping.
type Service struct {
	repo    Repository
	credits CreditStore
	ledger  *credit.Service
	nowFn   func() time.Time
}

// NewService creates a reward service.
func NewService(repo Repository, credits CreditStore, ledger *credit.Service) *Service {
	return &Service{repo: repo, credits: credits, ledger: ledger, nowFn: time.Now}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Status returns the user's claim state for today.
func (s *Service) Status(ctx context.Context, userID uint) (*Status, error) {
	now := s.nowFn()
	day, err := s.repo.Find(ctx, userID, dateKey(now))
	if err != nil {
		return nil, err
	}

	st := &Status{
		CanClaimDaily:   true,
		CanClaimSpecial: true,
		DailyReward:     DailyCreditsPerClaim,
		SpecialReward:   SpecialCredits,
	}
	if day == nil {
		return st, nil
	}

	st.DailyCount = day.DailyCount
	st.SpecialClaimed = day.SpecialClaimed
	st.CanClaimSpecial = !day.SpecialClaimed

	if day.DailyCount >= MaxDailyClaims {
		st.CanClaimDaily = false
	} else if day.LastClaimAt != nil {
		elapsed := now.Sub(*day.LastClaimAt)
		if elapsed < ClaimCooldown {
			st.CanClaimDaily = false
			st.CooldownRemaining = int((ClaimCooldown - elapsed).Seconds())
		}
	}
	return st, nil
}

// ClaimDaily grants one daily reward, honoring the per-day limit and cooldown.
func (s *Service) ClaimDaily(ctx context.Context, userID uint) (*ClaimResult, error) {
	now := s.nowFn()
	day, err := s.repo.ClaimDaily(ctx, userID, dateKey(now), now)
	if err != nil {
		return nil, err
	}

	balance, err := s.credits.AddCredits(ctx, userID, DailyCreditsPerClaim)
	if err != nil {
		return nil, err
	}
	s.recordLedger(ctx, userID, DailyCreditsPerClaim, "Watched daily ad")

	return &ClaimResult{
		CreditsEarned: DailyCreditsPerClaim,
		Balance:       balance,
		DailyCount:    day.DailyCount,
	}, nil
}

// ClaimSpecial grants the once-per-day special reward.
func (s *Service) ClaimSpecial(ctx context.Context, userID uint) (*ClaimResult, error) {
	now := s.nowFn()
	if _, err := s.repo.ClaimSpecial(ctx, userID, dateKey(now), now); err != nil {
		return nil, err
	}

	balance, err := s.credits.AddCredits(ctx, userID, SpecialCredits)
	if err != nil {
		return nil, err
	}
	s.recordLedger(ctx, userID, SpecialCredits, "Watched special ad")

	return &ClaimResult{
		CreditsEarned: SpecialCredits,
		Balance:       balance,
	}, nil
}

// CleanupBefore drops reward-day records older than the retention window.
func (s *Service) CleanupBefore(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.nowFn().Add(-retention)
	return s.repo.DeleteBefore(ctx, dateKey(cutoff))
}

func (s *Service) recordLedger(ctx context.Context, userID uint, amount decimal.Decimal, description string) {
	if err := s.ledger.Record(ctx, userID, amount, credit.TransactionAdReward, description); err != nil {
		logger.GetLogger().Error().Err(err).
			Uint("user_id", userID).
			Msg("failed to record ad reward transaction")
	}
}

// IsClaimError reports whether the error is a user-facing claim rejection.
func IsClaimError(err error) bool {
	return errors.Is(err, ErrDailyLimitReached) ||
		errors.Is(err, ErrCooldownActive) ||
		errors.Is(err, ErrAlreadyClaimed)
}
