package repository

import (
	"context"

	"github.com/slzdigital/catalogo/internal/review/domain"
	systemdomain "github.com/slzdigital/catalogo/internal/system/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertReview(ctx context.Context, db *gorm.DB, review *systemdomain.Review) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO reviews (id, system_id, user_name, rating, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		review.ID,
		review.SystemID,
		review.UserName,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	).Error
}

func (r *repo) InsertDemographics(ctx context.Context, db *gorm.DB, demographics *domain.Demographics) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO review_demographics (review_id, race, gender, age, latitude, longitude)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		demographics.ReviewID,
		demographics.Race,
		demographics.Gender,
		demographics.Age,
		demographics.Latitude,
		demographics.Longitude,
	).Error
}

// AggregateForSystem recomputes the mean and count from the full review set.
// COALESCE keeps the zero-review case at average 0 rather than NULL.
func (r *repo) AggregateForSystem(ctx context.Context, db *gorm.DB, systemID int64) (domain.Aggregate, error) {
	var row struct {
		Average float64 `gorm:"column:average"`
		Count   int     `gorm:"column:count"`
	}
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(AVG(CAST(rating AS FLOAT)), 0) AS average, COUNT(*) AS count
		 FROM reviews WHERE system_id = ?`,
		systemID,
	).Scan(&row).Error
	if err != nil {
		return domain.Aggregate{}, err
	}
	return domain.Aggregate{Average: row.Average, Count: row.Count}, nil
}

func (r *repo) UpdateSystemAggregate(ctx context.Context, db *gorm.DB, systemID int64, aggregate domain.Aggregate) error {
	return db.WithContext(ctx).Exec(
		`UPDATE systems SET rating = ?, review_count = ? WHERE id = ?`,
		aggregate.Average,
		aggregate.Count,
		systemID,
	).Error
}
