package artists

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kalakaar-art/kalakaar-backend/internal/artworks"
	"github.com/kalakaar-art/kalakaar-backend/internal/badges"
	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
	pkgerrors "github.com/kalakaar-art/kalakaar-backend/pkg/errors"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

func setupArtistsTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  display_name TEXT NOT NULL,
  bio TEXT,
  user_type TEXT NOT NULL,
  region TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  badge_verified INTEGER NOT NULL DEFAULT 0,
  badge_awarded_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	require.NoError(t, db.Exec(`
CREATE TABLE IF NOT EXISTS artworks (
  id TEXT PRIMARY KEY,
  artist_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT,
  medium TEXT NOT NULL,
  tags TEXT,
  price TEXT NOT NULL,
  region TEXT,
  is_active INTEGER NOT NULL DEFAULT 1,
  created_at DATETIME,
  updated_at DATETIME
);`).Error)
	return db
}

func newArtistsService(t *testing.T, db *gorm.DB) Service {
	t.Helper()
	svc, err := NewService(badges.NewRepository(db), artworks.NewRepository(db))
	require.NoError(t, err)
	return svc
}

func seedTestArtist(t *testing.T, db *gorm.DB, userType enums.UserType, active bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:          uuid.New(),
		Email:       fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		DisplayName: "Kavya",
		UserType:    userType,
		IsActive:    active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestProfileIncludesBadgeAndCount(t *testing.T) {
	db := setupArtistsTestDB(t)
	svc := newArtistsService(t, db)
	artist := seedTestArtist(t, db, enums.UserTypeArtist, true)

	awardedAt := time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", artist.ID).
		Updates(map[string]any{"badge_verified": true, "badge_awarded_at": awardedAt}).Error)

	for i := 0; i < 2; i++ {
		require.NoError(t, db.Create(&models.Artwork{
			ID:       uuid.New(),
			ArtistID: artist.ID,
			Title:    fmt.Sprintf("Piece %d", i+1),
			Medium:   enums.ArtworkMediumPottery,
			Price:    decimal.NewFromInt(2500),
			IsActive: i == 0,
		}).Error)
	}

	profile, err := svc.Profile(context.Background(), artist.ID)
	require.NoError(t, err)
	assert.Equal(t, artist.ID, profile.ID)
	assert.True(t, profile.Badges.Verified)
	require.NotNil(t, profile.Badges.AwardedAt)
	assert.Equal(t, int64(1), profile.ArtworkCount, "inactive pieces do not count")
}

func TestProfileNotFoundForInactiveOrNonArtist(t *testing.T) {
	db := setupArtistsTestDB(t)
	svc := newArtistsService(t, db)

	inactive := seedTestArtist(t, db, enums.UserTypeArtist, false)
	brand := seedTestArtist(t, db, enums.UserTypeBrand, true)

	for _, id := range []uuid.UUID{inactive.ID, brand.ID, uuid.New()} {
		_, err := svc.Profile(context.Background(), id)
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	}
}

func TestArtworksPagesActiveOnly(t *testing.T) {
	db := setupArtistsTestDB(t)
	svc := newArtistsService(t, db)
	artist := seedTestArtist(t, db, enums.UserTypeArtist, true)

	base := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, db.Create(&models.Artwork{
			ID:        uuid.New(),
			ArtistID:  artist.ID,
			Title:     fmt.Sprintf("Piece %d", i+1),
			Medium:    enums.ArtworkMediumTextile,
			Price:     decimal.NewFromInt(1800),
			IsActive:  i < 3,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}).Error)
	}

	page, err := svc.Artworks(context.Background(), artist.ID, pagination.Params{Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Artworks, 2)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, 2, page.Meta.Pages)
	assert.True(t, page.Artworks[0].CreatedAt.After(page.Artworks[1].CreatedAt))
}
