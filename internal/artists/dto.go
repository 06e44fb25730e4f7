package artists

import (
	"time"

	"github.com/google/uuid"

	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
)

// BadgeDTO mirrors the badge sub-structure on an artist profile.
type BadgeDTO struct {
	Verified  bool       `json:"verified"`
	AwardedAt *time.Time `json:"awarded_at,omitempty"`
}

// ProfileDTO is the public shape of an artist, including badge state and
// how many active pieces they currently list.
type ProfileDTO struct {
	ID           uuid.UUID `json:"id"`
	DisplayName  string    `json:"display_name"`
	Bio          *string   `json:"bio,omitempty"`
	Region       *string   `json:"region,omitempty"`
	Badges       BadgeDTO  `json:"badges"`
	ArtworkCount int64     `json:"artwork_count"`
	JoinedAt     time.Time `json:"joined_at"`
}

func profileFromModel(user *models.User, artworkCount int64) *ProfileDTO {
	return &ProfileDTO{
		ID:           user.ID,
		DisplayName:  user.DisplayName,
		Bio:          user.Bio,
		Region:       user.Region,
		Badges:       BadgeDTO{Verified: user.Badges.Verified, AwardedAt: user.Badges.AwardedAt},
		ArtworkCount: artworkCount,
		JoinedAt:     user.CreatedAt,
	}
}
