package badges

import (
	"time"

	"github.com/google/uuid"

	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/types"
)

// VerifiedBadgeThreshold is the number of active artworks an artist needs
// before the verified badge is awarded.
const VerifiedBadgeThreshold = 3

// ArtistSnapshot is the badge-relevant view of a user row. When an
// evaluation awards the badge, the snapshot reflects the state after
// the award was persisted.
type ArtistSnapshot struct {
	ID          uuid.UUID  `json:"id"`
	DisplayName string     `json:"display_name"`
	Verified    bool       `json:"verified"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
}

func snapshotFromModel(user *models.User) ArtistSnapshot {
	if user == nil {
		return ArtistSnapshot{}
	}
	return ArtistSnapshot{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Verified:    user.Badges.Verified,
		AwardedAt:   user.Badges.AwardedAt,
	}
}

// EvaluationResult reports the outcome of a single artist evaluation.
type EvaluationResult struct {
	BadgeAwarded bool           `json:"badge_awarded"`
	ArtworkCount int64          `json:"artwork_count"`
	Artist       ArtistSnapshot `json:"artist"`
}

// BatchEntry is one artist's outcome within a batch run. Error is set
// when that artist's evaluation failed; the rest of the batch is
// unaffected.
type BatchEntry struct {
	ArtistID     uuid.UUID `json:"artist_id"`
	ArtistName   string    `json:"artist_name"`
	ArtworkCount int64     `json:"artwork_count"`
	BadgeAwarded bool      `json:"badge_awarded"`
	Error        *string   `json:"error,omitempty"`
}

// BatchResult aggregates a full run over every active artist.
type BatchResult struct {
	TotalArtists  int          `json:"total_artists"`
	BadgesAwarded int          `json:"badges_awarded"`
	Results       []BatchEntry `json:"results"`
}

// Statistics is the platform-wide badge picture. EligibleArtists counts
// active artists at or above the threshold regardless of whether they
// already hold the badge.
type Statistics struct {
	TotalArtists     int64   `json:"total_artists"`
	VerifiedArtists  int64   `json:"verified_artists"`
	EligibleArtists  int64   `json:"eligible_artists"`
	VerificationRate float64 `json:"verification_rate"`
}

// VerifiedArtistDTO is the public listing shape for a verified artist.
type VerifiedArtistDTO struct {
	ID          uuid.UUID  `json:"id"`
	DisplayName string     `json:"display_name"`
	Bio         *string    `json:"bio,omitempty"`
	Region      *string    `json:"region,omitempty"`
	AwardedAt   *time.Time `json:"awarded_at,omitempty"`
}

func verifiedArtistFromModel(user models.User) VerifiedArtistDTO {
	return VerifiedArtistDTO{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		Bio:         user.Bio,
		Region:      user.Region,
		AwardedAt:   user.Badges.AwardedAt,
	}
}

// VerifiedArtistsPage is an offset-paginated slice of verified artists.
type VerifiedArtistsPage struct {
	Artists []VerifiedArtistDTO `json:"artists"`
	Meta    types.PageMeta      `json:"meta"`
}
