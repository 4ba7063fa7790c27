package prompttemplaterepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"aitoolhub-server/services/hub-api/internal/domain/prompttemplate"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/dbschema"
	"aitoolhub-server/services/hub-api/internal/utils/platformerrors"
)

type PromptTemplateGormRepository struct {
	db *gorm.DB
}

var _ prompttemplate.Repository = (*PromptTemplateGormRepository)(nil)

func NewPromptTemplateGormRepository(db *gorm.DB) prompttemplate.Repository {
	return &PromptTemplateGormRepository{db: db}
}

func (repo *PromptTemplateGormRepository) Create(ctx context.Context, t *prompttemplate.PromptTemplate) error {
	entity := dbschema.NewSchemaPromptTemplate(t)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create prompt template",
			err,
			"e82f6a05-9c13-4d78-b4e6-027d1f9c3b58",
		)
	}
	t.CreatedAt = entity.CreatedAt
	t.UpdatedAt = entity.UpdatedAt
	return nil
}

func (repo *PromptTemplateGormRepository) Update(ctx context.Context, t *prompttemplate.PromptTemplate) error {
	entity := dbschema.NewSchemaPromptTemplate(t)
	res := repo.db.WithContext(ctx).
		Model(&dbschema.PromptTemplate{}).
		Where("id = ?", entity.ID).
		Updates(map[string]any{
			"title":       entity.Title,
			"content":     entity.Content,
			"description": entity.Description,
			"tool_id":     entity.ToolID,
			"updated_at":  gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update prompt template",
			res.Error,
			"1a4c8e72-5f90-4b36-a8d1-c63e0f2d9b47",
		)
	}
	if res.RowsAffected == 0 {
		return prompttemplate.ErrNotFound
	}
	return nil
}

func (repo *PromptTemplateGormRepository) Delete(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&dbschema.PromptTemplate{})
	if res.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete prompt template",
			res.Error,
			"b38d5f91-0e64-4c27-96ab-74f2c1e8d053",
		)
	}
	if res.RowsAffected == 0 {
		return prompttemplate.ErrNotFound
	}
	return nil
}

func (repo *PromptTemplateGormRepository) FindByID(ctx context.Context, id string) (*prompttemplate.PromptTemplate, error) {
	var entity dbschema.PromptTemplate
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find prompt template",
			err,
			"f05a2d68-7c31-4e94-b57f-89e3d6a0c124",
		)
	}
	return entity.EtoD(), nil
}

func (repo *PromptTemplateGormRepository) FindByFilter(ctx context.Context, filter prompttemplate.Filter, limit, offset int) ([]*prompttemplate.PromptTemplate, int64, error) {
	query := repo.db.WithContext(ctx).Model(&dbschema.PromptTemplate{})
	if filter.ToolID != nil {
		query = query.Where("tool_id = ?", *filter.ToolID)
	}
	if filter.CreatorID != nil {
		query = query.Where("creator_id = ?", *filter.CreatorID)
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		query = query.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count prompt templates",
			err,
			"68b1f4d0-3a25-4c89-97e6-d02c5f7a8e31",
		)
	}

	var entities []dbschema.PromptTemplate
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
			"failed to list prompt templates",
			err,
			"4d9e2b76-8f10-4a53-bc28-e61f0d3c7a95",
		)
	}

	templates := make([]*prompttemplate.PromptTemplate, 0, len(entities))
	for i := range entities {
		templates = append(templates, entities[i].EtoD())
	}
	return templates, total, nil
}

func (repo *PromptTemplateGormRepository) Trending(ctx context.Context, limit int) ([]*prompttemplate.PromptTemplate, error) {
	var entities []dbschema.PromptTemplate
	err := repo.db.WithContext(ctx).
		Order("usage_count DESC, created_at DESC").
		Limit(limit).
		Find(&entities).
		Error
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list trending prompt templates",
			err,
			"a73c0e58-2d94-4f16-85bc-91f6e4d2b087",
		)
	}

	templates := make([]*prompttemplate.PromptTemplate, 0, len(entities))
	for i := range entities {
		templates = append(templates, entities[i].EtoD())
	}
	return templates, nil
}

func (repo *PromptTemplateGormRepository) IncrementUsage(ctx context.Context, id string) error {
	res := repo.db.WithContext(ctx).
		Model(&dbschema.PromptTemplate{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"usage_count": gorm.Expr("usage_count + 1"),
			"updated_at":  gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to increment template usage",
			res.Error,
			"50e7d3a1-6b28-4c95-8fd4-37a0c9e2f618",
		)
	}
	if res.RowsAffected == 0 {
		return prompttemplate.ErrNotFound
	}
	return nil
}

func (repo *PromptTemplateGormRepository) AddRating(ctx context.Context, id string, rating int) error {
	res := repo.db.WithContext(ctx).
		Model(&dbschema.PromptTemplate{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"rating_sum":   gorm.Expr("rating_sum + ?", rating),
			"rating_count": gorm.Expr("rating_count + 1"),
			"updated_at":   gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to add template rating",
			res.Error,
			"cb2f8e64-0a53-4d17-b98c-65d1f3a7e420",
		)
	}
	if res.RowsAffected == 0 {
		return prompttemplate.ErrNotFound
	}
	return nil
}

func (repo *PromptTemplateGormRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&dbschema.PromptTemplate{}).Count(&total).Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count prompt templates",
			err,
			"7f4a1c93-5e70-4b82-a6d0-19c8e3f5d267",
		)
	}
	return total, nil
}
