package prompttemplate

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a template does not exist.
var ErrNotFound = errors.New("prompt template not found")

// PromptTemplate is a marketplace entry: a reusable prompt tied to a tool.
type PromptTemplate struct {
	ID          string
	Title       string
	Content     string
	Description *string
	ToolID      string
	CreatorID   *uint // nil for system-seeded templates
	UsageCount  int64
	RatingSum   int64
	RatingCount int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AverageRating returns the mean rating, 0 when unrated.
func (p *PromptTemplate) AverageRating() float64 {
	if p.RatingCount == 0 {
		return 0
	}
	return float64(p.RatingSum) / float64(p.RatingCount)
}

// Filter narrows template queries.
type Filter struct {
	ToolID    *string
	CreatorID *uint
	Search    *string
}

// Repository persists marketplace templates.
type Repository interface {
	Create(ctx context.Context, t *PromptTemplate) error
	Update(ctx context.Context, t *PromptTemplate) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*PromptTemplate, error)
	FindByFilter(ctx context.Context, filter Filter, limit, offset int) ([]*PromptTemplate, int64, error)

	// Trending returns templates ordered by usage count descending.
	Trending(ctx context.Context, limit int) ([]*PromptTemplate, error)

	// IncrementUsage atomically bumps the usage counter.
	IncrementUsage(ctx context.Context, id string) error

	// AddRating atomically folds a rating into the running sums.
	AddRating(ctx context.Context, id string, rating int) error

	Count(ctx context.Context) (int64, error)
}
