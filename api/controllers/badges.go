package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kalakaar-art/kalakaar-backend/api/middleware"
	"github.com/kalakaar-art/kalakaar-backend/api/responses"
	"github.com/kalakaar-art/kalakaar-backend/api/validators"
	badgesvc "github.com/kalakaar-art/kalakaar-backend/internal/badges"
	pkgerrors "github.com/kalakaar-art/kalakaar-backend/pkg/errors"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
)

// BadgeStats serves the platform-wide badge statistics.
func BadgeStats(svc badgesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "badge service unavailable"))
			return
		}

		stats, err := svc.Statistics(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, stats)
	}
}

// VerifiedArtists serves the paginated public list of verified artists.
func VerifiedArtists(svc badgesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "badge service unavailable"))
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

		artists, err := svc.ListVerifiedArtists(r.Context(), pagination.Params{Page: page, Limit: limit})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, artists)
	}
}

// CheckMyBadges evaluates the authenticated caller's badge eligibility.
func CheckMyBadges(svc badgesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "badge service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}
		uid, err := uuid.Parse(userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id"))
			return
		}

		result, err := svc.Evaluate(r.Context(), uid)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// CheckAllBadges runs the badge sweep across every active artist.
// Per-artist failures are reported inside the result entries; the batch
// itself still answers 200.
func CheckAllBadges(svc badgesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "badge service unavailable"))
			return
		}

		batch, err := svc.RunForAllArtists(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, batch)
	}
}
