package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kalakaar-art/kalakaar-backend/api/controllers"
	"github.com/kalakaar-art/kalakaar-backend/api/middleware"
	"github.com/kalakaar-art/kalakaar-backend/internal/artists"
	"github.com/kalakaar-art/kalakaar-backend/internal/badges"
	"github.com/kalakaar-art/kalakaar-backend/pkg/config"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
)

// RouterParams carry everything the HTTP surface depends on.
type RouterParams struct {
	Config  *config.Config
	Logger  *logger.Logger
	DB      controllers.Pinger
	Redis   controllers.Pinger
	Badges  badges.Service
	Artists artists.Service
}

// NewRouter assembles the chi route tree.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, params.DB, params.Redis, logg))
	})

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1/badges", func(r chi.Router) {
		r.Get("/stats", controllers.BadgeStats(params.Badges, logg))
		r.Get("/verified-artists", controllers.VerifiedArtists(params.Badges, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, logg))
			r.Get("/check", controllers.CheckMyBadges(params.Badges, logg))
			r.With(middleware.RequireRole("admin", logg)).Post("/check-all", controllers.CheckAllBadges(params.Badges, logg))
		})
	})

	r.Route("/api/v1/artists", func(r chi.Router) {
		r.Get("/{artistId}", controllers.ArtistProfile(params.Artists, logg))
		r.Get("/{artistId}/artworks", controllers.ArtistArtworks(params.Artists, logg))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Get("/api/v1/ping", controllers.PrivatePing())
	})

	return r
}
