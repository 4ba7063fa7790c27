package reward

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrDailyLimitReached is returned when the per-day claim count is exhausted.
	ErrDailyLimitReached = errors.New("daily reward limit reached")
	// ErrCooldownActive is returned when the claim cooldown has not elapsed.
	ErrCooldownActive = errors.New("reward cooldown active")
	// ErrAlreadyClaimed is returned when the special reward was already taken today.
	ErrAlreadyClaimed = errors.New("special reward already claimed")
)

const (
	// MaxDailyClaims bounds daily ad-reward claims per user per day.
	MaxDailyClaims = 3
	// ClaimCooldown is the minimum spacing between daily claims.
	ClaimCooldown = time.Hour
)

// DailyCreditsPerClaim and SpecialCredits are the grant sizes.
var (
	DailyCreditsPerClaim = decimal.NewFromInt(10)
	SpecialCredits       = decimal.NewFromInt(25)
)

// Day is the per-user per-day reward record. Date is a calendar day in the
// server's local time, formatted 2006-01-02.
type Day struct {
	ID               uint
	UserID           uint
	Date             string
	DailyCount       int
	LastClaimAt      *time.Time
	SpecialClaimed   bool
	SpecialClaimedAt *time.Time
}

// Repository persists reward-day records. Claim operations are atomic:
// concurrent claims for the same user/day must not exceed the limits.
type Repository interface {
	// Find returns the record for a user/day, nil when absent.
	Find(ctx context.Context, userID uint, date string) (*Day, error)

	// ClaimDaily atomically increments the daily count when below max and
	// outside the cooldown, creating the record when missing. Returns the
	// updated record, or ErrDailyLimitReached / ErrCooldownActive.
	ClaimDaily(ctx context.Context, userID uint, date string, now time.Time) (*Day, error)

	// ClaimSpecial atomically marks the special reward claimed, creating
	// the record when missing. Returns ErrAlreadyClaimed on repeats.
	ClaimSpecial(ctx context.Context, userID uint, date string, now time.Time) (*Day, error)

	// DeleteBefore removes records older than the given date, returning
	// the count removed.
	DeleteBefore(ctx context.Context, date string) (int64, error)
}
