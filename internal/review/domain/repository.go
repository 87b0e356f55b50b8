package domain

import (
	"context"

	systemdomain "github.com/slzdigital/catalogo/internal/system/domain"
	"gorm.io/gorm"
)

// Aggregate is the recomputed rating state of a system after an insert.
type Aggregate struct {
	Average float64
	Count   int
}

type Repository interface {
	InsertReview(ctx context.Context, db *gorm.DB, review *systemdomain.Review) error
	InsertDemographics(ctx context.Context, db *gorm.DB, demographics *Demographics) error
	AggregateForSystem(ctx context.Context, db *gorm.DB, systemID int64) (Aggregate, error)
	UpdateSystemAggregate(ctx context.Context, db *gorm.DB, systemID int64, aggregate Aggregate) error
}
