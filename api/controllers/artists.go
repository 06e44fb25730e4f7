package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/kalakaar-art/kalakaar-backend/api/responses"
	"github.com/kalakaar-art/kalakaar-backend/api/validators"
	artistsvc "github.com/kalakaar-art/kalakaar-backend/internal/artists"
	pkgerrors "github.com/kalakaar-art/kalakaar-backend/pkg/errors"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

// ArtistProfile serves an artist's public profile, badge state included.
func ArtistProfile(svc artistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artist service unavailable"))
			return
		}

		artistID, err := uuid.Parse(chi.URLParam(r, "artistId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid artist id"))
			return
		}

		profile, err := svc.Profile(r.Context(), artistID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, profile)
	}
}

// ArtistArtworks serves an artist's active artworks, newest first.
func ArtistArtworks(svc artistsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "artist service unavailable"))
			return
		}

		artistID, err := uuid.Parse(chi.URLParam(r, "artistId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid artist id"))
			return
		}

		page, err := validators.ParseQueryInt(r, "page", pagination.DefaultPage, 1, 100000)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		artworks, err := svc.Artworks(r.Context(), artistID, pagination.Params{Page: page, Limit: limit})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, artworks)
	}
}
