package service

import (
	"context"
	"errors"
	"testing"

	"github.com/slzdigital/catalogo/internal/dashboard/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	rows []domain.SystemRow
	err  error
}

func (f *fakeRepo) ListSystemRows(ctx context.Context) ([]domain.SystemRow, error) {
	_ = ctx
	return f.rows, f.err
}

func newStatsService(repo domain.Repository) domain.Service {
	return New(Params{Log: zap.NewNop(), Repo: repo})
}

func ratingPtr(v float64) *float64 { return &v }

func TestGetStatsEmptyCatalog(t *testing.T) {
	svc := newStatsService(&fakeRepo{})

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	require.NoError(t, err)

	assert.Zero(t, stats.TotalSystems)
	assert.Zero(t, stats.TotalDownloads)
	// empty set averages to 0, never NaN
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Empty(t, stats.Departments)

	require.Len(t, stats.RatingDistribution, 6)
	for i, bin := range stats.RatingDistribution {
		assert.Equal(t, i, bin.Rating)
		assert.Zero(t, bin.Count)
	}
}

func TestGetStatsTotalsAndBuckets(t *testing.T) {
	svc := newStatsService(&fakeRepo{rows: []domain.SystemRow{
		{SecretaryCode: "SEMUS", DownloadCount: 100, UsageCount: 500, Rating: ratingPtr(4.0), ReviewCount: 10},
		{SecretaryCode: "SEMUS", DownloadCount: 50, UsageCount: 200, Rating: ratingPtr(5.0), ReviewCount: 5},
		{SecretaryCode: "SEMED", DownloadCount: 30, UsageCount: 100, Rating: nil, ReviewCount: 0},
		{SecretaryCode: "SEPLAN", DownloadCount: 20, UsageCount: 50, Rating: ratingPtr(2.5), ReviewCount: 2},
	}})

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalSystems)
	assert.Equal(t, int64(200), stats.TotalDownloads)
	assert.Equal(t, int64(850), stats.TotalUsage)
	assert.Equal(t, int64(17), stats.TotalReviews)
	// mean over the three rated systems only
	assert.InDelta(t, (4.0+5.0+2.5)/3, stats.AverageRating, 1e-9)

	require.Len(t, stats.Departments, 3)
	assert.Equal(t, "saude", stats.Departments[0].Code)
	assert.Equal(t, 2, stats.Departments[0].Systems)
	assert.Equal(t, int64(150), stats.Departments[0].Downloads)
	assert.InDelta(t, 4.5, stats.Departments[0].AverageRating, 1e-9)

	assert.Equal(t, "educacao", stats.Departments[1].Code)
	assert.Equal(t, 0.0, stats.Departments[1].AverageRating)

	// SEPLAN has no bucket rule and falls through to the catch-all
	assert.Equal(t, "outros", stats.Departments[2].Code)
}

func TestGetStatsRatingDistribution(t *testing.T) {
	svc := newStatsService(&fakeRepo{rows: []domain.SystemRow{
		{SecretaryCode: "SEMUS", Rating: nil},
		{SecretaryCode: "SEMUS", Rating: ratingPtr(0.5)},
		{SecretaryCode: "SEMUS", Rating: ratingPtr(1.0)},
		{SecretaryCode: "SEMUS", Rating: ratingPtr(3.7)},
		{SecretaryCode: "SEMUS", Rating: ratingPtr(4.99)},
		{SecretaryCode: "SEMUS", Rating: ratingPtr(5.0)},
		{SecretaryCode: "SEMUS", Rating: ratingPtr(7.2)},
	}})

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	require.NoError(t, err)

	counts := make(map[int]int, len(stats.RatingDistribution))
	for _, bin := range stats.RatingDistribution {
		counts[bin.Rating] = bin.Count
	}

	// unrated and sub-1 ratings share the sentinel bin
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[1])
	assert.Equal(t, 0, counts[2])
	assert.Equal(t, 1, counts[3])
	assert.Equal(t, 1, counts[4])
	// 5.0 exactly and out-of-range values clamp into bin 5
	assert.Equal(t, 2, counts[5])
}

func TestGetStatsDepartmentScope(t *testing.T) {
	svc := newStatsService(&fakeRepo{rows: []domain.SystemRow{
		{SecretaryCode: "SEMUS", DownloadCount: 100, Rating: ratingPtr(4.0), ReviewCount: 10},
		{SecretaryCode: "SEMED", DownloadCount: 30, Rating: ratingPtr(3.0), ReviewCount: 1},
	}})

	stats, err := svc.GetStats(context.Background(), domain.StatsRequest{Department: "saude"})
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalSystems)
	assert.Equal(t, int64(100), stats.TotalDownloads)
	assert.InDelta(t, 4.0, stats.AverageRating, 1e-9)
	require.Len(t, stats.Departments, 1)
	assert.Equal(t, "saude", stats.Departments[0].Code)
}

func TestGetStatsUnknownDepartment(t *testing.T) {
	svc := newStatsService(&fakeRepo{})

	_, err := svc.GetStats(context.Background(), domain.StatsRequest{Department: "financeiro"})
	assert.ErrorIs(t, err, domain.ErrInvalidDepartment)
}

func TestGetStatsRepositoryError(t *testing.T) {
	storageErr := errors.New("connection reset")
	svc := newStatsService(&fakeRepo{err: storageErr})

	_, err := svc.GetStats(context.Background(), domain.StatsRequest{})
	assert.ErrorIs(t, err, storageErr)
}
