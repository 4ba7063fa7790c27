package dbschema

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(CreditTransaction{}, ToolUsage{})
}

// CreditTransaction represents the persisted ledger entry schema.
type CreditTransaction struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"index:idx_credit_tx_user_created;not null"`
	User        User            `gorm:"foreignKey:UserID"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Type        string          `gorm:"type:varchar(30);not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	CreatedAt   time.Time       `gorm:"index:idx_credit_tx_user_created;not null;default:now()"`
}

func NewSchemaCreditTransaction(tx *credit.Transaction) *CreditTransaction {
	if tx == nil {
		return nil
	}
	return &CreditTransaction{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Amount:      tx.Amount,
		Type:        string(tx.Type),
		Description: tx.Description,
		CreatedAt:   tx.CreatedAt,
	}
}

func (t *CreditTransaction) EtoD() *credit.Transaction {
	if t == nil {
		return nil
	}
	return &credit.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		Amount:      t.Amount,
		Type:        credit.TransactionType(t.Type),
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// ToolUsage represents the persisted per-invocation usage record.
type ToolUsage struct {
	ID           uint            `gorm:"primaryKey"`
	UserID       uint            `gorm:"index:idx_tool_usage_user_used;not null"`
	User         User            `gorm:"foreignKey:UserID"`
	ToolID       string          `gorm:"type:varchar(100);not null;index"`
	Provider     string          `gorm:"type:varchar(50);not null"`
	Model        string          `gorm:"type:varchar(150)"`
	CreditsSpent decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Success      bool            `gorm:"not null"`
	ErrorMessage *string         `gorm:"type:text"`
	Metadata     datatypes.JSON  `gorm:"type:jsonb"`
	UsedAt       time.Time       `gorm:"index:idx_tool_usage_user_used;not null;default:now()"`
}

func NewSchemaToolUsage(u *credit.ToolUsage) *ToolUsage {
	if u == nil {
		return nil
	}
	var metadataJSON datatypes.JSON
	if len(u.Metadata) > 0 {
		if data, err := json.Marshal(u.Metadata); err == nil {
			metadataJSON = datatypes.JSON(data)
		}
	}
	return &ToolUsage{
		ID:           u.ID,
		UserID:       u.UserID,
		ToolID:       u.ToolID,
		Provider:     u.Provider,
		Model:        u.Model,
		CreditsSpent: u.CreditsSpent,
		Success:      u.Success,
		ErrorMessage: u.ErrorMessage,
		Metadata:     metadataJSON,
		UsedAt:       u.UsedAt,
	}
}

func (u *ToolUsage) EtoD() *credit.ToolUsage {
	if u == nil {
		return nil
	}
	var metadata map[string]any
	if len(u.Metadata) > 0 {
		_ = json.Unmarshal(u.Metadata, &metadata)
	}
	return &credit.ToolUsage{
		ID:           u.ID,
		UserID:       u.UserID,
		ToolID:       u.ToolID,
		Provider:     u.Provider,
		Model:        u.Model,
		CreditsSpent: u.CreditsSpent,
		Success:      u.Success,
		ErrorMessage: u.ErrorMessage,
		Metadata:     metadata,
		UsedAt:       u.UsedAt,
	}
}
