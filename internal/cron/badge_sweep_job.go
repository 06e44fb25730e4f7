package cron

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/kalakaar-art/kalakaar-backend/internal/badges"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
	"github.com/kalakaar-art/kalakaar-backend/pkg/metrics"
)

const badgeSweepJobName = "badge-sweep"

type badgeEvaluator interface {
	RunForAllArtists(ctx context.Context) (*badges.BatchResult, error)
}

// BadgeSweepJobParams configure the scheduled badge sweep.
type BadgeSweepJobParams struct {
	Logger  *logger.Logger
	Badges  badgeEvaluator
	Metrics *metrics.JobMetrics
}

// NewBadgeSweepJob constructs the job that re-evaluates every active
// artist's badge eligibility.
func NewBadgeSweepJob(params BadgeSweepJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Badges == nil {
		return nil, fmt.Errorf("badge service required")
	}
	return &badgeSweepJob{
		logg:    params.Logger,
		badges:  params.Badges,
		metrics: params.Metrics,
	}, nil
}

type badgeSweepJob struct {
	logg    *logger.Logger
	badges  badgeEvaluator
	metrics *metrics.JobMetrics
}

func (j *badgeSweepJob) Name() string { return badgeSweepJobName }

// Run sweeps every active artist. Individual failures are already
// folded into the batch result; they surface here as a combined,
// non-fatal job error so the cycle's accounting still lands.
func (j *badgeSweepJob) Run(ctx context.Context) error {
	batch, err := j.badges.RunForAllArtists(ctx)
	if err != nil {
		return fmt.Errorf("run badge sweep: %w", err)
	}

	var errs []error
	failed := 0
	for _, entry := range batch.Results {
		if entry.Error == nil {
			continue
		}
		failed++
		errs = append(errs, fmt.Errorf("artist %s: %s", entry.ArtistID, *entry.Error))
	}

	if j.metrics != nil {
		j.metrics.AddBadgesAwarded(badgeSweepJobName, batch.BadgesAwarded)
	}

	logCtx := j.logg.WithFields(ctx, map[string]any{
		"total_artists":  batch.TotalArtists,
		"badges_awarded": batch.BadgesAwarded,
		"failed":         failed,
	})
	j.logg.Info(logCtx, "badge sweep complete")

	return multierr.Combine(errs...)
}
