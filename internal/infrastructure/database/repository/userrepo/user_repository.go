package userrepo

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"aitoolhub-server/services/hub-api/internal/domain/user"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/dbschema"
	"aitoolhub-server/services/hub-api/internal/utils/platformerrors"
)

type UserGormRepository struct {
	db *gorm.DB
}

var _ user.Repository = (*UserGormRepository)(nil)

func NewUserGormRepository(db *gorm.DB) user.Repository {
	return &UserGormRepository{db: db}
}

func (repo *UserGormRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	var entity dbschema.User
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
			"failed to find user by ID",
			err,
			"7c1f2a0e-4b8d-4f3a-9e56-1d2c3b4a5f60",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
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
			"failed to find user by email",
			err,
			"e90d74a3-2c15-40bb-8a7d-fb3e6d9c8412",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) FindByGoogleID(ctx context.Context, googleID string) (*user.User, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Where("google_id = ?", googleID).
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
			"failed to find user by google ID",
			err,
			"5b8e2f91-7d04-4ac6-b3e8-924c1a6d7f35",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) Create(ctx context.Context, usr *user.User) (*user.User, error) {
	entity := dbschema.NewSchemaUser(usr)
	if err := repo.db.WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrEmailTaken
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create user",
			err,
			"c4a7d0b2-9e31-4568-8f2d-60b1e3c9a784",
		)
	}
	return entity.EtoD(), nil
}

func (repo *UserGormRepository) Update(ctx context.Context, usr *user.User) error {
	entity := dbschema.NewSchemaUser(usr)
	err := repo.db.WithContext(ctx).
		Model(&dbschema.User{}).
		Where("id = ?", entity.ID).
		Updates(map[string]any{
			"username":        entity.Username,
			"email":           entity.Email,
			"password_hash":   entity.PasswordHash,
			"profile_picture": entity.ProfilePicture,
			"bio":             entity.Bio,
			"google_id":       entity.GoogleID,
			"is_verified":     entity.IsVerified,
			"is_active":       entity.IsActive,
			"is_admin":        entity.IsAdmin,
			"last_login":      entity.LastLogin,
			"updated_at":      gorm.Expr("NOW()"),
		}).Error
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update user",
			err,
			"1f6b3d8a-52c9-47e0-b415-8d2a7c9e0f63",
		)
	}
	return nil
}

// SpendCredits deducts amount with a single conditional UPDATE so two
// concurrent spends can never drive the balance negative. The row is only
// touched when credits >= amount.
func (repo *UserGormRepository) SpendCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	res := repo.db.WithContext(ctx).
		Model(&dbschema.User{}).
		Where("id = ? AND credits >= ?", userID, amount).
		Updates(map[string]any{
			"credits":    gorm.Expr("credits - ?", amount),
			"updated_at": gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return decimal.Zero, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to spend credits",
			res.Error,
			"9a2e6c40-1b7f-4d83-ae59-3c8f0d2b6e17",
		)
	}
	if res.RowsAffected == 0 {
		// Either the user is missing or the balance cannot cover the amount.
		usr, err := repo.FindByID(ctx, userID)
		if err != nil {
			return decimal.Zero, err
		}
		if usr == nil {
			return decimal.Zero, user.ErrNotFound
		}
		return decimal.Zero, user.ErrInsufficientCredits
	}
	return repo.currentBalance(ctx, userID)
}

// AddCredits increments the balance, counting positive grants toward
// lifetime credits.
func (repo *UserGormRepository) AddCredits(ctx context.Context, userID uint, amount decimal.Decimal) (decimal.Decimal, error) {
	updates := map[string]any{
		"credits":    gorm.Expr("credits + ?", amount),
		"updated_at": gorm.Expr("NOW()"),
	}
	if amount.IsPositive() {
		updates["lifetime_credits"] = gorm.Expr("lifetime_credits + ?", amount)
	}
	res := repo.db.WithContext(ctx).
		Model(&dbschema.User{}).
		Where("id = ?", userID).
		Updates(updates)
	if res.Error != nil {
		return decimal.Zero, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to add credits",
			res.Error,
			"d5f8b1c3-6a20-4e97-bd34-7e1c9a0f2568",
		)
	}
	if res.RowsAffected == 0 {
		return decimal.Zero, user.ErrNotFound
	}
	return repo.currentBalance(ctx, userID)
}

func (repo *UserGormRepository) currentBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var entity dbschema.User
	err := repo.db.WithContext(ctx).
		Select("credits").
		Where("id = ?", userID).
		First(&entity).
		Error
	if err != nil {
		return decimal.Zero, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to read credit balance",
			err,
			"3e7a9f52-0c48-4b16-82dd-f65b1e8c4a90",
		)
	}
	return entity.Credits, nil
}

func (repo *UserGormRepository) List(ctx context.Context, limit, offset int) ([]*user.User, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&dbschema.User{}).Count(&total).Error; err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count users",
			err,
			"b07c3e19-8f5d-4a62-9c08-21d4f6a8e3b5",
		)
	}

	var entities []dbschema.User
	err := repo.db.WithContext(ctx).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&entities).
		Error
	if err != nil {
		return nil, 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list users",
			err,
			"6d1e8b40-3a97-4f25-bc61-09e7d2c5f8a4",
		)
	}

	users := make([]*user.User, 0, len(entities))
	for i := range entities {
		users = append(users, entities[i].EtoD())
	}
	return users, total, nil
}
