package badges

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

func TestCountActiveArtworksIgnoresInactive(t *testing.T) {
	db := setupBadgesTestDB(t)
	repo := NewRepository(db)
	artist := seedArtist(t, db, "Meera")
	seedArtworks(t, db, artist.ID, 3, 2)

	count, err := repo.CountActiveArtworks(context.Background(), artist.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestCountActiveArtworksUnknownArtistIsZero(t *testing.T) {
	db := setupBadgesTestDB(t)
	repo := NewRepository(db)

	count, err := repo.CountActiveArtworks(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestAwardBadgeIsConditional(t *testing.T) {
	db := setupBadgesTestDB(t)
	repo := NewRepository(db)
	artist := seedArtist(t, db, "Ravi")

	first, err := repo.AwardBadge(context.Background(), artist.ID, time.Now().UTC())
	require.NoError(t, err)
	second, err := repo.AwardBadge(context.Background(), artist.ID, time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second, "second conditional update must not match any row")

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", artist.ID).Error)
	assert.True(t, stored.Badges.Verified)
	require.NotNil(t, stored.Badges.AwardedAt)
}

func TestAwardBadgePreservesFirstTimestamp(t *testing.T) {
	db := setupBadgesTestDB(t)
	repo := NewRepository(db)
	artist := seedArtist(t, db, "Ravi")

	firstAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	_, err := repo.AwardBadge(context.Background(), artist.ID, firstAt)
	require.NoError(t, err)
	_, err = repo.AwardBadge(context.Background(), artist.ID, firstAt.Add(time.Hour))
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, "id = ?", artist.ID).Error)
	require.NotNil(t, stored.Badges.AwardedAt)
	assert.True(t, stored.Badges.AwardedAt.Equal(firstAt))
}

func TestListActiveArtistsFiltersTypeAndActivity(t *testing.T) {
	db := setupBadgesTestDB(t)
	repo := NewRepository(db)
	active := seedArtist(t, db, "Asha")
	seedUser(t, db, "Retired", enums.UserTypeArtist, false)
	seedUser(t, db, "Gallery", enums.UserTypeBrand, true)

	artists, err := repo.ListActiveArtists(context.Background())
	require.NoError(t, err)
	require.Len(t, artists, 1)
	assert.Equal(t, active.ID, artists[0].ID)
}

func TestCountEligibleArtistsAppliesThreshold(t *testing.T) {
	db := setupBadgesTestDB(t)
	repo := NewRepository(db)

	eligible := seedArtist(t, db, "Eligible")
	seedArtworks(t, db, eligible.ID, 3, 0)

	almost := seedArtist(t, db, "Almost")
	seedArtworks(t, db, almost.ID, 2, 3)

	verified := seedArtist(t, db, "AlreadyVerified")
	seedArtworks(t, db, verified.ID, 4, 0)
	markVerified(t, db, verified.ID, time.Now().UTC())

	count, err := repo.CountEligibleArtists(context.Background(), VerifiedBadgeThreshold)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count, "verified artists still count as eligible")
}

func TestListVerifiedArtistsPaginates(t *testing.T) {
	db := setupBadgesTestDB(t)
	repo := NewRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		artist := seedArtist(t, db, "Verified")
		markVerified(t, db, artist.ID, base.Add(time.Duration(i)*time.Hour))
	}
	seedArtist(t, db, "Unverified")

	page, total, err := repo.ListVerifiedArtists(context.Background(), pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	require.NotNil(t, page[0].Badges.AwardedAt)
	require.NotNil(t, page[1].Badges.AwardedAt)
	assert.True(t, page[0].Badges.AwardedAt.After(*page[1].Badges.AwardedAt), "newest award first")

	last, _, err := repo.ListVerifiedArtists(context.Background(), pagination.Params{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestInactiveStateSurvivesInsert(t *testing.T) {
	db := setupBadgesTestDB(t)
	retired := seedUser(t, db, "Retired", enums.UserTypeArtist, false)
	seedArtworks(t, db, retired.ID, 1, 1)

	var storedUser models.User
	require.NoError(t, db.First(&storedUser, "id = ?", retired.ID).Error)
	assert.False(t, storedUser.IsActive, "inactive user must round-trip through Create")

	var inactiveCount int64
	require.NoError(t, db.Model(&models.Artwork{}).
		Where("artist_id = ? AND is_active = ?", retired.ID, false).
		Count(&inactiveCount).Error)
	assert.Equal(t, int64(1), inactiveCount, "inactive artwork must round-trip through Create")
}
