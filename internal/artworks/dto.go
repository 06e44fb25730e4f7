package artworks

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
	"github.com/kalakaar-art/kalakaar-backend/pkg/types"
)

// ArtworkDTO is the public listing shape of a piece.
type ArtworkDTO struct {
	ID        uuid.UUID           `json:"id"`
	ArtistID  uuid.UUID           `json:"artist_id"`
	Title     string              `json:"title"`
	Medium    enums.ArtworkMedium `json:"medium"`
	Tags      []string            `json:"tags,omitempty"`
	Price     decimal.Decimal     `json:"price"`
	Region    *string             `json:"region,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// FromModel converts a persisted artwork into its public shape.
func FromModel(artwork models.Artwork) ArtworkDTO {
	return ArtworkDTO{
		ID:        artwork.ID,
		ArtistID:  artwork.ArtistID,
		Title:     artwork.Title,
		Medium:    artwork.Medium,
		Tags:      artwork.Tags,
		Price:     artwork.Price,
		Region:    artwork.Region,
		CreatedAt: artwork.CreatedAt,
	}
}

// Page is an offset-paginated slice of an artist's active artworks.
type Page struct {
	Artworks []ArtworkDTO   `json:"artworks"`
	Meta     types.PageMeta `json:"meta"`
}
