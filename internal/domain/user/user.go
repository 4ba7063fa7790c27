package user

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientCredits is returned by SpendCredits when the balance
	// cannot cover the amount. Recoverable: callers surface an ad-reward
	// upsell, not an error page.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken is returned on registration conflicts.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on failed logins.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// User is an account holder with a credit balance.
type User struct {
	ID              uint
	Username        string
	Email           string
	PasswordHash    *string // nil for Google-only accounts
	ProfilePicture  *string
	Bio             *string
	GoogleID        *string
	IsVerified      bool
	IsActive        bool
	IsAdmin         bool
	Credits         decimal.Decimal
	LifetimeCredits decimal.Decimal
	CreatedAt       time.Time
	UpdatedAt       time.Time
	LastLogin       *time.Time
}

// Repository is the persistent user/credit store. Credit adjustments are
// atomic at the store level; SpendCredits is a conditional decrement that
// fails without touching the balance when it would go negative.
type Repository interface {
	// Find methods return (nil, nil) when no row matches; errors are
	// reserved for store failures.
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*User, error)
	Create(ctx context.Context, u *User) (*User, error)
	Update(ctx context.Context, u *User) error

	// SpendCredits atomically deducts amount when the balance covers it,
	// returning the new balance. Returns ErrInsufficientCredits otherwise,
	// leaving the balance untouched.
	SpendCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error)

	// AddCredits atomically increments the balance (and lifetime credits
	// when the amount is positive), returning the new balance.
	AddCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error)

	List(ctx context.Context, limit, offset int) ([]*User, int64, error)
}
