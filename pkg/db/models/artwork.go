package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
)

// Artwork represents a single listed piece. Only rows with IsActive true
// count toward the owner's badge eligibility; soft-deleted pieces keep the
// row but never the flag.
type Artwork struct {
	ID          uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ArtistID    uuid.UUID           `gorm:"column:artist_id;type:uuid;not null;index"`
	Title       string              `gorm:"column:title;not null"`
	Description *string             `gorm:"column:description"`
	Medium      enums.ArtworkMedium `gorm:"column:medium;type:artwork_medium;not null"`
	Tags        pq.StringArray      `gorm:"column:tags;type:text[]"`
	Price       decimal.Decimal     `gorm:"column:price;type:numeric(12,2);not null"`
	Region      *string             `gorm:"column:region"`
	IsActive    bool                `gorm:"column:is_active;not null"`
	CreatedAt   time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
