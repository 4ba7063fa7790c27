package credit

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionToolUsage TransactionType = "tool_usage"
	TransactionAdReward  TransactionType = "ad_reward"
	TransactionRefund    TransactionType = "refund"
	TransactionPurchase  TransactionType = "purchase"
	TransactionAdmin     TransactionType = "admin"
)

// Transaction is a single credit balance change. Negative amounts are
// debits, positive amounts are grants.
type Transaction struct {
	ID          uint
	UserID      uint
	Amount      decimal.Decimal
	Type        TransactionType
	Description string
	CreatedAt   time.Time
}

// ToolUsage records one tool invocation, successful or not. Metadata
// carries free-form request details (task type, latency, token counts).
type ToolUsage struct {
	ID           uint
	UserID       uint
	ToolID       string
	Provider     string
	Model        string
	CreditsSpent decimal.Decimal
	Success      bool
	ErrorMessage *string
	Metadata     map[string]any
	UsedAt       time.Time
}

// Package is a purchasable credit bundle. Payment processing is handled
// elsewhere; this catalog is read-only.
type Package struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Credits     int             `json:"credits"`
	Price       decimal.Decimal `json:"price"`
}

// Packages is the fixed purchase catalog.
var Packages = []Package{
	{
		ID:          "starter",
		Name:        "Starter Pack",
		Description: "Perfect for trying out our AI tools",
		Credits:     100,
		Price:       decimal.RequireFromString("49.99"),
	},
	{
		ID:          "pro",
		Name:        "Pro Pack",
		Description: "Most popular choice for regular users",
		Credits:     500,
		Price:       decimal.RequireFromString("199.99"),
	},
	{
		ID:          "enterprise",
		Name:        "Enterprise Pack",
		Description: "Best value for power users",
		Credits:     2000,
		Price:       decimal.RequireFromString("690.99"),
	},
}

// Repository persists ledger entries and usage records.
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, userID uint, limit, offset int) ([]*Transaction, int64, error)
	CreateToolUsage(ctx context.Context, usage *ToolUsage) error
	ListToolUsage(ctx context.Context, userID uint, limit, offset int) ([]*ToolUsage, int64, error)
}
