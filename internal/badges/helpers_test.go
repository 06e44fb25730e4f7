package badges

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
)

func setupBadgesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	users := `
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
);`
	artworks := `
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
);`
	require.NoError(t, db.Exec(users).Error)
	require.NoError(t, db.Exec(artworks).Error)
	return db
}

func seedArtist(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()
	return seedUser(t, db, name, enums.UserTypeArtist, true)
}

func seedUser(t *testing.T, db *gorm.DB, name string, userType enums.UserType, active bool) *models.User {
	t.Helper()
	user := &models.User{
		ID:          uuid.New(),
		Email:       fmt.Sprintf("%s-%s@example.com", name, uuid.NewString()[:8]),
		DisplayName: name,
		UserType:    userType,
		IsActive:    active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedArtworks(t *testing.T, db *gorm.DB, artistID uuid.UUID, active, inactive int) {
	t.Helper()
	for i := 0; i < active+inactive; i++ {
		artwork := &models.Artwork{
			ID:       uuid.New(),
			ArtistID: artistID,
			Title:    fmt.Sprintf("Untitled %d", i+1),
			Medium:   enums.ArtworkMediumPainting,
			Price:    decimal.NewFromInt(int64(1500 + i*100)),
			IsActive: i < active,
		}
		require.NoError(t, db.Create(artwork).Error)
	}
}

func markVerified(t *testing.T, db *gorm.DB, artistID uuid.UUID, at time.Time) {
	t.Helper()
	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", artistID).
		Updates(map[string]any{"badge_verified": true, "badge_awarded_at": at}).Error)
}
