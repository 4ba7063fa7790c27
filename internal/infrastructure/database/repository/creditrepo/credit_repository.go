package creditrepo

import (
	"context"

	"gorm.io/gorm"

	"aitoolhub-server/services/hub-api/internal/domain/credit"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/dbschema"
	"aitoolhub-server/services/hub-api/internal/utils/platformerrors"
)

type CreditGormRepository struct {
	db *gorm.DB
}

var _ credit.Repository = (*CreditGormRepository)(nil)

func NewCreditGormRepository(db *gorm.DB) credit.Repository {
	return &CreditGormRepository{db: db}
}

func (repo *CreditGormRepository) CreateTransaction(ctx context.Context, tx *credit.Transaction) error {
	entity := dbschema.NewSchemaCreditTransaction(tx)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create credit transaction",
			err,
			"42a8f6d1-9c3e-4b70-85f2-e1d7b0c9a634",
		)
	}
	tx.ID = entity.ID
	tx.CreatedAt = entity.CreatedAt
	return nil
}

func (repo *CreditGormRepository) ListTransactions(ctx context.Context, userID uint, limit, offset int) ([]*credit.Transaction, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&dbschema.CreditTransaction{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count credit transactions",
			err,
			"f31c9a7e-5d82-4b06-a94f-0e6d8c2b7153",
		)
	}

	var entities []dbschema.CreditTransaction
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entities).
		Error
	if err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list credit transactions",
			err,
			"8e5d2c06-7f19-43ab-b861-4a0c9e3f7d25",
		)
	}

	txs := make([]*credit.Transaction, 0, len(entities))
	for i := range entities {
		txs = append(txs, entities[i].EtoD())
	}
	return txs, total, nil
}

func (repo *CreditGormRepository) CreateToolUsage(ctx context.Context, usage *credit.ToolUsage) error {
	entity := dbschema.NewSchemaToolUsage(usage)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create tool usage record",
			err,
			"a96e4f83-2d01-4c57-9bae-6f3d8c1b0e72",
		)
	}
	usage.ID = entity.ID
	usage.UsedAt = entity.UsedAt
	return nil
}

func (repo *CreditGormRepository) ListToolUsage(ctx context.Context, userID uint, limit, offset int) ([]*credit.ToolUsage, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&dbschema.ToolUsage{}).
		Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count tool usage records",
			err,
			"0d7b5e29-4a68-4f13-bc97-82e1f6a0d354",
		)
	}

	var entities []dbschema.ToolUsage
	err := query.
		Order("used_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entities).
		Error
	if err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list tool usage records",
			err,
			"57f0a3c8-1e94-4d26-8b7a-c9d2e6f1b480",
		)
	}

	usages := make([]*credit.ToolUsage, 0, len(entities))
	for i := range entities {
		usages = append(usages, entities[i].EtoD())
	}
	return usages, total, nil
}
