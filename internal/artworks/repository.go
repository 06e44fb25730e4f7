package artworks

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

// Repository exposes read access to artwork rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to artwork reads.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActiveByArtist pages through an artist's active artworks, newest
// first.
func (r *Repository) ListActiveByArtist(ctx context.Context, artistID uuid.UUID, params pagination.Params) ([]models.Artwork, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("artist_id = ? AND is_active = ?", artistID, true).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Artwork
	err := base.
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}
