package service

import (
	"context"
	"math"
	"strings"

	"github.com/slzdigital/catalogo/internal/dashboard/domain"
	referencedomain "github.com/slzdigital/catalogo/internal/reference/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:  p.Log.Named("dashboard.service"),
		repo: p.Repo,
	}
}

// GetStats recomputes every counter from the current row set. There is no
// caching and no incremental maintenance; the dashboard always reflects the
// database as of this request.
func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.Stats, error) {
	var scope *referencedomain.Bucket
	if department := strings.TrimSpace(req.Department); department != "" {
		bucket, ok := referencedomain.BucketByCode(department)
		if !ok {
			return nil, domain.ErrInvalidDepartment
		}
		scope = &bucket
	}

	rows, err := s.repo.ListSystemRows(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.Stats{
		Departments:        make([]domain.DepartmentStats, 0, len(referencedomain.Buckets())),
		RatingDistribution: emptyDistribution(),
	}

	type bucketAccumulator struct {
		systems     int
		downloads   int64
		usage       int64
		ratingSum   float64
		ratingCount int
	}
	perBucket := make(map[string]*bucketAccumulator)

	var ratingSum float64
	var ratedSystems int

	for _, row := range rows {
		bucket := referencedomain.BucketForSecretary(row.SecretaryCode)
		if scope != nil && bucket.Code != scope.Code {
			continue
		}

		stats.TotalSystems++
		stats.TotalDownloads += row.DownloadCount
		stats.TotalUsage += row.UsageCount
		stats.TotalReviews += row.ReviewCount

		accumulator := perBucket[bucket.Code]
		if accumulator == nil {
			accumulator = &bucketAccumulator{}
			perBucket[bucket.Code] = accumulator
		}
		accumulator.systems++
		accumulator.downloads += row.DownloadCount
		accumulator.usage += row.UsageCount

		if row.Rating != nil {
			ratingSum += *row.Rating
			ratedSystems++
			accumulator.ratingSum += *row.Rating
			accumulator.ratingCount++
		}

		bin := ratingBin(row.Rating)
		stats.RatingDistribution[bin].Count++
	}

	// Empty sets average to 0, never null or NaN.
	if ratedSystems > 0 {
		stats.AverageRating = ratingSum / float64(ratedSystems)
	}

	for _, bucket := range referencedomain.Buckets() {
		if scope != nil && bucket.Code != scope.Code {
			continue
		}
		accumulator := perBucket[bucket.Code]
		if accumulator == nil {
			continue
		}
		departmentStats := domain.DepartmentStats{
			Code:      bucket.Code,
			Name:      bucket.Name,
			Systems:   accumulator.systems,
			Downloads: accumulator.downloads,
			Usage:     accumulator.usage,
		}
		if accumulator.ratingCount > 0 {
			departmentStats.AverageRating = accumulator.ratingSum / float64(accumulator.ratingCount)
		}
		stats.Departments = append(stats.Departments, departmentStats)
	}

	return stats, nil
}

func emptyDistribution() []domain.RatingBin {
	bins := make([]domain.RatingBin, 6)
	for i := range bins {
		bins[i].Rating = i
	}
	return bins
}

// ratingBin maps a rating into one of six disjoint bins over [0,5]:
// nil (unrated) falls into the sentinel bin 0, everything else into
// floor(rating) clamped to the valid range.
func ratingBin(rating *float64) int {
	if rating == nil {
		return 0
	}
	bin := int(math.Floor(*rating))
	if bin < 0 {
		return 0
	}
	if bin > 5 {
		return 5
	}
	return bin
}
