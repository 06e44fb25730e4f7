package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
)

// Badges carries the achievement flags stored on each user row.
// Verified is monotonic: this system only ever flips it false to true,
// and AwardedAt is set exactly once, at the moment of that flip.
type Badges struct {
	Verified  bool       `gorm:"column:badge_verified;not null;default:false"`
	AwardedAt *time.Time `gorm:"column:badge_awarded_at"`
}

// User represents the canonical identity entity.
type User struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email       string         `gorm:"type:text;not null;uniqueIndex"`
	DisplayName string         `gorm:"column:display_name;not null"`
	Bio         *string        `gorm:"column:bio"`
	UserType    enums.UserType `gorm:"column:user_type;type:user_type;not null"`
	Region      *string        `gorm:"column:region"`
	IsActive    bool           `gorm:"column:is_active;not null"`
	Badges      Badges         `gorm:"embedded"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
