package rewardrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"aitoolhub-server/services/hub-api/internal/domain/reward"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database/dbschema"
	"aitoolhub-server/services/hub-api/internal/utils/platformerrors"
)

type RewardGormRepository struct {
	db *gorm.DB
}

var _ reward.Repository = (*RewardGormRepository)(nil)

func NewRewardGormRepository(db *gorm.DB) reward.Repository {
	return &RewardGormRepository{db: db}
}

func (repo *RewardGormRepository) Find(ctx context.Context, userID uint, date string) (*reward.Day, error) {
	var entity dbschema.AdRewardDay
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
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
			"failed to find reward day",
			err,
			"2b9f7e14-6c50-4d38-a2e7-91f8c0d3b546",
		)
	}
	return entity.EtoD(), nil
}

// ClaimDaily increments the daily counter with a conditional UPDATE. The
// limit and cooldown checks live in the WHERE clause so concurrent claims
// cannot exceed the cap.
func (repo *RewardGormRepository) ClaimDaily(ctx context.Context, userID uint, date string, now time.Time) (*reward.Day, error) {
	if err := repo.ensureRow(ctx, userID, date); err != nil {
		return nil, err
	}

	cutoff := now.Add(-reward.ClaimCooldown)
	res := repo.db.WithContext(ctx).
		Model(&dbschema.AdRewardDay{}).
		Where("user_id = ? AND date = ? AND daily_count < ? AND (last_claim_at IS NULL OR last_claim_at <= ?)",
			userID, date, reward.MaxDailyClaims, cutoff).
		Updates(map[string]any{
			"daily_count":   gorm.Expr("daily_count + 1"),
			"last_claim_at": now,
			"updated_at":    gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to claim daily reward",
			res.Error,
			"6e3a1d85-0f27-4b94-bc63-d7e9f2c8a501",
		)
	}
	if res.RowsAffected == 0 {
		day, err := repo.Find(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if day != nil && day.DailyCount >= reward.MaxDailyClaims {
			return nil, reward.ErrDailyLimitReached
		}
		return nil, reward.ErrCooldownActive
	}

	return repo.Find(ctx, userID, date)
}

// ClaimSpecial flips the special flag once per day.
func (repo *RewardGormRepository) ClaimSpecial(ctx context.Context, userID uint, date string, now time.Time) (*reward.Day, error) {
	if err := repo.ensureRow(ctx, userID, date); err != nil {
		return nil, err
	}

	res := repo.db.WithContext(ctx).
		Model(&dbschema.AdRewardDay{}).
		Where("user_id = ? AND date = ? AND special_claimed = false", userID, date).
		Updates(map[string]any{
			"special_claimed":    true,
			"special_claimed_at": now,
			"updated_at":         gorm.Expr("NOW()"),
		})
	if res.Error != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to claim special reward",
			res.Error,
			"c1f5b7a9-8e42-4d06-93cf-25a0d8e6b713",
		)
	}
	if res.RowsAffected == 0 {
		return nil, reward.ErrAlreadyClaimed
	}

	return repo.Find(ctx, userID, date)
}

func (repo *RewardGormRepository) DeleteBefore(ctx context.Context, date string) (int64, error) {
	res := repo.db.WithContext(ctx).
		Where("date < ?", date).
		Delete(&dbschema.AdRewardDay{})
	if res.Error != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete old reward days",
			res.Error,
			"74d2e8f0-3b16-4a59-8c07-e9f1a5d3c628",
		)
	}
	return res.RowsAffected, nil
}

func (repo *RewardGormRepository) ensureRow(ctx context.Context, userID uint, date string) error {
	entity := &dbschema.AdRewardDay{UserID: userID, Date: date}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoNothing: true,
		}).
		Create(entity).
		Error
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to ensure reward day row",
			err,
			"9b0c4f27-1d63-4e85-a7f9-38c2b6e0d154",
		)
	}
	return nil
}
