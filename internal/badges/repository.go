package badges

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

// Repository exposes the badge-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to badge operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindUserByID loads a user by their UUID.
func (r *Repository) FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountActiveArtworks returns how many active artworks the artist owns.
// An unknown artist simply counts zero.
func (r *Repository) CountActiveArtworks(ctx context.Context, artistID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Artwork{}).
		Where("artist_id = ? AND is_active = ?", artistID, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// AwardBadge flips badge_verified to true and stamps badge_awarded_at,
// but only when the badge is not already held. The conditional update is
// the concurrency guard: of two racing callers, exactly one observes an
// affected row.
func (r *Repository) AwardBadge(ctx context.Context, artistID uuid.UUID, at time.Time) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND badge_verified = ?", artistID, false).
		Updates(map[string]any{
			"badge_verified":   true,
			"badge_awarded_at": at,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ListActiveArtists returns every active user of artist type. Order is
// unspecified.
func (r *Repository) ListActiveArtists(ctx context.Context) ([]models.User, error) {
	var artists []models.User
	err := r.db.WithContext(ctx).
		Where("user_type = ? AND is_active = ?", enums.UserTypeArtist, true).
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}

// CountActiveArtists counts active users of artist type.
func (r *Repository) CountActiveArtists(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_type = ? AND is_active = ?", enums.UserTypeArtist, true).
		Count(&count).Error
	return count, err
}

// CountVerifiedArtists counts active artists already holding the badge.
func (r *Repository) CountVerifiedArtists(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_type = ? AND is_active = ? AND badge_verified = ?", enums.UserTypeArtist, true, true).
		Count(&count).Error
	return count, err
}

// CountEligibleArtists counts active artists whose active artwork count
// meets the threshold, verified or not.
func (r *Repository) CountEligibleArtists(ctx context.Context, threshold int) (int64, error) {
	var count int64
	sub := r.db.Model(&models.Artwork{}).
		Select("count(*)").
		Where("artworks.artist_id = users.id AND artworks.is_active = ?", true)
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_type = ? AND is_active = ?", enums.UserTypeArtist, true).
		Where("(?) >= ?", sub, threshold).
		Count(&count).Error
	return count, err
}

// ListVerifiedArtists pages through verified active artists, most
// recently awarded first.
func (r *Repository) ListVerifiedArtists(ctx context.Context, params pagination.Params) ([]models.User, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_type = ? AND is_active = ? AND badge_verified = ?", enums.UserTypeArtist, true, true).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var artists []models.User
	err := base.
		Order("badge_awarded_at DESC").
		Offset(params.Offset()).
		Limit(params.Limit).
		Find(&artists).Error
	if err != nil {
		return nil, 0, err
	}
	return artists, total, nil
}
