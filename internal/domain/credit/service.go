package credit

import (
	"context"

	"github.com/shopspring/decimal"
)

// Service provides ledger business logic.
type Service struct {
	repo Repository
}

// NewService creates a credit ledger service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends a ledger entry for a balance change that has already been
// applied to the user's account.
func (s *Service) Record(ctx context.Context, userID uint, amount decimal.Decimal, txType TransactionType, description string) error {
	return s.repo.CreateTransaction(ctx, &Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
	})
}

// RecordUsage appends a tool usage record.
func (s *Service) RecordUsage(ctx context.Context, usage *ToolUsage) error {
	return s.repo.CreateToolUsage(ctx, usage)
}

// History returns a page of ledger entries, newest first.
func (s *Service) History(ctx context.Context, userID uint, limit, offset int) ([]*Transaction, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListTransactions(ctx, userID, limit, offset)
}

// UsageHistory returns a page of tool usage records, newest first.
func (s *Service) UsageHistory(ctx context.Context, userID uint, limit, offset int) ([]*ToolUsage, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.repo.ListToolUsage(ctx, userID, limit, offset)
}
