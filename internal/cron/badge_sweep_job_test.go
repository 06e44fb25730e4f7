package cron

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kalakaar-art/kalakaar-backend/internal/badges"
	"github.com/kalakaar-art/kalakaar-backend/pkg/logger"
)

type stubEvaluator struct {
	batch *badges.BatchResult
	err   error
}

func (s *stubEvaluator) RunForAllArtists(context.Context) (*badges.BatchResult, error) {
	return s.batch, s.err
}

func sweepLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "badge-worker-test"})
}

func TestNewBadgeSweepJobValidation(t *testing.T) {
	_, err := NewBadgeSweepJob(BadgeSweepJobParams{Badges: &stubEvaluator{}})
	require.Error(t, err)

	_, err = NewBadgeSweepJob(BadgeSweepJobParams{Logger: sweepLogger()})
	require.Error(t, err)
}

func TestBadgeSweepJobCleanRun(t *testing.T) {
	job, err := NewBadgeSweepJob(BadgeSweepJobParams{
		Logger: sweepLogger(),
		Badges: &stubEvaluator{batch: &badges.BatchResult{
			TotalArtists:  3,
			BadgesAwarded: 1,
			Results: []badges.BatchEntry{
				{ArtistID: uuid.New(), BadgeAwarded: true},
				{ArtistID: uuid.New()},
				{ArtistID: uuid.New()},
			},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, "badge-sweep", job.Name())
	assert.NoError(t, job.Run(context.Background()))
}

func TestBadgeSweepJobReportsPerArtistFailures(t *testing.T) {
	brokenMsg := "count artworks: disk I/O error"
	job, err := NewBadgeSweepJob(BadgeSweepJobParams{
		Logger: sweepLogger(),
		Badges: &stubEvaluator{batch: &badges.BatchResult{
			TotalArtists:  2,
			BadgesAwarded: 1,
			Results: []badges.BatchEntry{
				{ArtistID: uuid.New(), BadgeAwarded: true},
				{ArtistID: uuid.New(), Error: &brokenMsg},
			},
		}},
	})
	require.NoError(t, err)

	runErr := job.Run(context.Background())
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), brokenMsg)
}

func TestBadgeSweepJobFatalOnListFailure(t *testing.T) {
	job, err := NewBadgeSweepJob(BadgeSweepJobParams{
		Logger: sweepLogger(),
		Badges: &stubEvaluator{err: errors.New("store down")},
	})
	require.NoError(t, err)
	require.Error(t, job.Run(context.Background()))
}
