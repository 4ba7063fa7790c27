package dbschema

import (
	"time"

	"aitoolhub-server/services/hub-api/internal/domain/prompttemplate"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(PromptTemplate{})
}

// PromptTemplate represents the database schema for marketplace templates.
type PromptTemplate struct {
	ID          string    `gorm:"column:id;type:varchar(50);primaryKey"`
	Title       string    `gorm:"column:title;type:varchar(255);not null"`
	Content     string    `gorm:"column:content;type:text;not null"`
	Description *string   `gorm:"column:description;type:text"`
	ToolID      string    `gorm:"column:tool_id;type:varchar(100);not null;index"`
	CreatorID   *uint     `gorm:"column:creator_id;index"`
	UsageCount  int64     `gorm:"column:usage_count;not null;default:0;index"`
	RatingSum   int64     `gorm:"column:rating_sum;not null;default:0"`
	RatingCount int64     `gorm:"column:rating_count;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now()"`
}

func NewSchemaPromptTemplate(t *prompttemplate.PromptTemplate) *PromptTemplate {
	if t == nil {
		return nil
	}
	return &PromptTemplate{
		ID:          t.ID,
		Title:       t.Title,
		Content:     t.Content,
		Description: t.Description,
		ToolID:      t.ToolID,
		CreatorID:   t.CreatorID,
		UsageCount:  t.UsageCount,
		RatingSum:   t.RatingSum,
		RatingCount: t.RatingCount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (t *PromptTemplate) EtoD() *prompttemplate.PromptTemplate {
	if t == nil {
		return nil
	}
	return &prompttemplate.PromptTemplate{
		ID:          t.ID,
		Title:       t.Title,
		Content:     t.Content,
		Description: t.Description,
		ToolID:      t.ToolID,
		CreatorID:   t.CreatorID,
		UsageCount:  t.UsageCount,
		RatingSum:   t.RatingSum,
		RatingCount: t.RatingCount,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
