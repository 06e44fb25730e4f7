package artists

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kalakaar-art/kalakaar-backend/internal/artworks"
	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
	pkgerrors "github.com/kalakaar-art/kalakaar-backend/pkg/errors"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

type userReader interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CountActiveArtworks(ctx context.Context, artistID uuid.UUID) (int64, error)
}

type artworkReader interface {
	ListActiveByArtist(ctx context.Context, artistID uuid.UUID, params pagination.Params) ([]models.Artwork, int64, error)
}

// Service exposes the public artist read surface.
type Service interface {
	Profile(ctx context.Context, artistID uuid.UUID) (*ProfileDTO, error)
	Artworks(ctx context.Context, artistID uuid.UUID, params pagination.Params) (*artworks.Page, error)
}

type service struct {
	users    userReader
	artworks artworkReader
}

// NewService builds the artist read service.
func NewService(users userReader, artworkRepo artworkReader) (Service, error) {
	if users == nil {
		return nil, fmt.Errorf("user reader required")
	}
	if artworkRepo == nil {
		return nil, fmt.Errorf("artwork repository required")
	}
	return &service{users: users, artworks: artworkRepo}, nil
}

func (s *service) Profile(ctx context.Context, artistID uuid.UUID) (*ProfileDTO, error) {
	user, err := s.loadArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	count, err := s.users.CountActiveArtworks(ctx, user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count artworks")
	}
	return profileFromModel(user, count), nil
}

func (s *service) Artworks(ctx context.Context, artistID uuid.UUID, params pagination.Params) (*artworks.Page, error) {
	if _, err := s.loadArtist(ctx, artistID); err != nil {
		return nil, err
	}

	params = params.Normalize()
	rows, total, err := s.artworks.ListActiveByArtist(ctx, artistID, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list artworks")
	}

	page := &artworks.Page{Artworks: make([]artworks.ArtworkDTO, 0, len(rows))}
	for _, row := range rows {
		page.Artworks = append(page.Artworks, artworks.FromModel(row))
	}
	page.Meta = pagination.Meta(params, total)
	return page, nil
}

func (s *service) loadArtist(ctx context.Context, artistID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindUserByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "artist not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load artist")
	}
	if user.UserType != enums.UserTypeArtist || !user.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "artist not found")
	}
	return user, nil
}
