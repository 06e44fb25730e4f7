package enums

import "fmt"

// ArtworkMedium represents the canonical medium enum for artworks.
type ArtworkMedium string

const (
	ArtworkMediumPainting    ArtworkMedium = "painting"
	ArtworkMediumSculpture   ArtworkMedium = "sculpture"
	ArtworkMediumTextile     ArtworkMedium = "textile"
	ArtworkMediumPottery     ArtworkMedium = "pottery"
	ArtworkMediumPrintmaking ArtworkMedium = "printmaking"
	ArtworkMediumPhotography ArtworkMedium = "photography"
	ArtworkMediumMixedMedia  ArtworkMedium = "mixed_media"
)

var validArtworkMediums = []ArtworkMedium{
	ArtworkMediumPainting,
	ArtworkMediumSculpture,
	ArtworkMediumTextile,
	ArtworkMediumPottery,
	ArtworkMediumPrintmaking,
	ArtworkMediumPhotography,
	ArtworkMediumMixedMedia,
}

// String implements fmt.Stringer.
func (m ArtworkMedium) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ArtworkMedium.
func (m ArtworkMedium) IsValid() bool {
	for _, candidate := range validArtworkMediums {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseArtworkMedium converts raw input into an ArtworkMedium.
func ParseArtworkMedium(value string) (ArtworkMedium, error) {
	for _, candidate := range validArtworkMediums {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid artwork medium %q", value)
}
