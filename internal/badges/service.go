package badges

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/kalakaar-art/kalakaar-backend/pkg/config"
	"github.com/kalakaar-art/kalakaar-backend/pkg/db/models"
	"github.com/kalakaar-art/kalakaar-backend/pkg/enums"
	pkgerrors "github.com/kalakaar-art/kalakaar-backend/pkg/errors"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
	"github.com/kalakaar-art/kalakaar-backend/pkg/pagination"
	pkgredis "github.com/kalakaar-art/kalakaar-backend/pkg/redis"
)

type badgeRepository interface {
	FindUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	CountActiveArtworks(ctx context.Context, artistID uuid.UUID) (int64, error)
	AwardBadge(ctx context.Context, artistID uuid.UUID, at time.Time) (bool, error)
	ListActiveArtists(ctx context.Context) ([]models.User, error)
	CountActiveArtists(ctx context.Context) (int64, error)
	CountVerifiedArtists(ctx context.Context) (int64, error)
	CountEligibleArtists(ctx context.Context, threshold int) (int64, error)
	ListVerifiedArtists(ctx context.Context, params pagination.Params) ([]models.User, int64, error)
}

type statsCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

// Service exposes badge evaluation and reporting operations.
type Service interface {
	Evaluate(ctx context.Context, userID uuid.UUID) (*EvaluationResult, error)
	RunForAllArtists(ctx context.Context) (*BatchResult, error)
	Statistics(ctx context.Context) (*Statistics, error)
	ListVerifiedArtists(ctx context.Context, params pagination.Params) (*VerifiedArtistsPage, error)
}

type service struct {
	repo  badgeRepository
	cache statsCache
	cfg   config.BadgesConfig
	logg  *logger.Logger
	now   func() time.Time
}

// NewService builds a badge service. The cache is optional; without it
// statistics always hit the store directly.
func NewService(repo badgeRepository, cache statsCache, cfg config.BadgesConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("badge repository required")
	}
	if cfg.BatchConcurrency <= 0 {
		cfg.BatchConcurrency = 1
	}
	return &service{
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		logg:  logg,
		now:   time.Now,
	}, nil
}

func (s *service) Evaluate(ctx context.Context, userID uuid.UUID) (*EvaluationResult, error) {
	user, err := s.repo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotAnArtist, "user is not an artist")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}
	if user.UserType != enums.UserTypeArtist {
		return nil, pkgerrors.New(pkgerrors.CodeNotAnArtist, "user is not an artist")
	}

	count, err := s.repo.CountActiveArtworks(ctx, user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count artworks")
	}

	result := &EvaluationResult{ArtworkCount: count}
	if count >= VerifiedBadgeThreshold && !user.Badges.Verified {
		awardedAt := s.now().UTC()
		awarded, err := s.repo.AwardBadge(ctx, user.ID, awardedAt)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "award badge")
		}
		if awarded {
			result.BadgeAwarded = true
			user.Badges.Verified = true
			user.Badges.AwardedAt = &awardedAt
			if s.logg != nil {
				ctx := s.logg.WithArtistID(ctx, user.ID.String())
				s.logg.Info(ctx, "badge.awarded")
			}
		} else {
			// Lost the race to a concurrent evaluation. Reload so the
			// snapshot carries the winner's award timestamp.
			fresh, err := s.repo.FindUserByID(ctx, user.ID)
			if err == nil {
				user = fresh
			}
		}
	}

	result.Artist = snapshotFromModel(user)
	return result, nil
}

func (s *service) RunForAllArtists(ctx context.Context) (*BatchResult, error) {
	artists, err := s.repo.ListActiveArtists(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list artists")
	}

	results := make([]BatchEntry, len(artists))
	var mu sync.Mutex
	awarded := 0

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.cfg.BatchConcurrency)
	for i := range artists {
		i := i
		artist := artists[i]
		group.Go(func() error {
			entry := BatchEntry{ArtistID: artist.ID, ArtistName: artist.DisplayName}
			eval, err := s.Evaluate(groupCtx, artist.ID)
			if err != nil {
				msg := err.Error()
				entry.Error = &msg
			} else {
				entry.ArtworkCount = eval.ArtworkCount
				entry.BadgeAwarded = eval.BadgeAwarded
			}

			mu.Lock()
			results[i] = entry
			if entry.BadgeAwarded {
				awarded++
			}
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "run batch")
	}

	return &BatchResult{
		TotalArtists:  len(artists),
		BadgesAwarded: awarded,
		Results:       results,
	}, nil
}

func (s *service) Statistics(ctx context.Context) (*Statistics, error) {
	if cached := s.cachedStatistics(ctx); cached != nil {
		return cached, nil
	}

	total, err := s.repo.CountActiveArtists(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count artists")
	}
	verified, err := s.repo.CountVerifiedArtists(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count verified artists")
	}
	eligible, err := s.repo.CountEligibleArtists(ctx, VerifiedBadgeThreshold)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count eligible artists")
	}

	stats := &Statistics{
		TotalArtists:    total,
		VerifiedArtists: verified,
		EligibleArtists: eligible,
	}
	if total > 0 {
		stats.VerificationRate = float64(verified) / float64(total) * 100
	}

	s.storeStatistics(ctx, stats)
	return stats, nil
}

func (s *service) ListVerifiedArtists(ctx context.Context, params pagination.Params) (*VerifiedArtistsPage, error) {
	params = params.Normalize()
	artists, total, err := s.repo.ListVerifiedArtists(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list verified artists")
	}

	page := &VerifiedArtistsPage{Artists: make([]VerifiedArtistDTO, 0, len(artists))}
	for _, artist := range artists {
		page.Artists = append(page.Artists, verifiedArtistFromModel(artist))
	}
	page.Meta = pagination.Meta(params, total)
	return page, nil
}

const statsCacheKey = "badges:stats"

// cachedStatistics is best effort: a cold or unreachable cache falls
// through to the store.
func (s *service) cachedStatistics(ctx context.Context) *Statistics {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey(statsCacheKey))
	if err != nil {
		if !errors.Is(err, pkgredis.Nil) && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "badges.stats_cache_read_failed")
		}
		return nil
	}
	var stats Statistics
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *service) storeStatistics(ctx context.Context, stats *Statistics) {
	if s.cache == nil || s.cfg.StatsCacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey(statsCacheKey), payload, s.cfg.StatsCacheTTL); err != nil && s.logg != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "badges.stats_cache_write_failed")
	}
}
