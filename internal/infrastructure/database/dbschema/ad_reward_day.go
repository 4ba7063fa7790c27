package dbschema

import (
	"time"

	"aitoolhub-server/services/hub-api/internal/domain/reward"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(AdRewardDay{})
}

// AdRewardDay tracks a user's ad-reward claims for one calendar day.
type AdRewardDay struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           uint   `gorm:"uniqueIndex:ux_ad_reward_user_date;not null"`
	User             User   `gorm:"foreignKey:UserID"`
	Date             string `gorm:"type:varchar(10);uniqueIndex:ux_ad_reward_user_date;not null"`
	DailyCount       int    `gorm:"not null;default:0"`
	LastClaimAt      *time.Time
	SpecialClaimed   bool `gorm:"not null;default:false"`
	SpecialClaimedAt *time.Time
	CreatedAt        time.Time `gorm:"not null;default:now()"`
	UpdatedAt        time.Time `gorm:"not null;default:now()"`
}

func NewSchemaAdRewardDay(d *reward.Day) *AdRewardDay {
	if d == nil {
		return nil
	}
	return &AdRewardDay{
		ID:               d.ID,
		UserID:           d.UserID,
		Date:             d.Date,
		DailyCount:       d.DailyCount,
		LastClaimAt:      d.LastClaimAt,
		SpecialClaimed:   d.SpecialClaimed,
		SpecialClaimedAt: d.SpecialClaimedAt,
	}
}

func (d *AdRewardDay) EtoD() *reward.Day {
	if d == nil {
		return nil
	}
	return &reward.Day{
		ID:               d.ID,
		UserID:           d.UserID,
		Date:             d.Date,
		DailyCount:       d.DailyCount,
		LastClaimAt:      d.LastClaimAt,
		SpecialClaimed:   d.SpecialClaimed,
		SpecialClaimedAt: d.SpecialClaimedAt,
	}
}
