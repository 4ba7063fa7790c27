package dbschema

import (
	"time"

	"github.com/shopspring/decimal"

	"aitoolhub-server/services/hub-api/internal/domain/user"
	"aitoolhub-server/services/hub-api/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(User{})
}

// User represents the persisted account schema with its credit balance.
type User struct {
	BaseModel
	Username        string          `gorm:"type:varchar(150);not null"`
	Email           string          `gorm:"type:varchar(320);not null;uniqueIndex"`
	PasswordHash    *string         `gorm:"type:varchar(255)"`
	ProfilePicture  *string         `gorm:"type:varchar(512)"`
	Bio             *string         `gorm:"type:text"`
	GoogleID        *string         `gorm:"type:varchar(255);uniqueIndex"`
	IsVerified      bool            `gorm:"not null;default:false"`
	IsActive        bool            `gorm:"not null;default:true"`
	IsAdmin         bool            `gorm:"not null;default:false"`
	Credits         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	LifetimeCredits decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	LastLogin       *time.Time
}

// NewSchemaUser converts a domain user into a schema instance.
func NewSchemaUser(u *user.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		BaseModel: BaseModel{
			ID:        u.ID,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		Username:        u.Username,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		ProfilePicture:  u.ProfilePicture,
		Bio:             u.Bio,
		GoogleID:        u.GoogleID,
		IsVerified:      u.IsVerified,
		IsActive:        u.IsActive,
		IsAdmin:         u.IsAdmin,
		Credits:         u.Credits,
		LifetimeCredits: u.LifetimeCredits,
		LastLogin:       u.LastLogin,
	}
}

// EtoD converts a schema user back to the domain representation.
func (u *User) EtoD() *user.User {
	if u == nil {
		return nil
	}

	return &user.User{
		ID:              u.ID,
		Username:        u.Username,
		Email:           u.Email,
		PasswordHash:    u.PasswordHash,
		ProfilePicture:  u.ProfilePicture,
		Bio:             u.Bio,
		GoogleID:        u.GoogleID,
		IsVerified:      u.IsVerified,
		IsActive:        u.IsActive,
		IsAdmin:         u.IsAdmin,
		Credits:         u.Credits,
		LifetimeCredits: u.LifetimeCredits,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
		LastLogin:       u.LastLogin,
	}
}
