package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Filter narrows the system listing. Every field is optional and the set
// combines with AND semantics.
type Filter struct {
	Category      string
	Secretary     string
	Search        string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Highlight     *bool
}

type Repository interface {
	List(ctx context.Context, db *gorm.DB, filter Filter) ([]System, error)
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*System, error)
	Create(ctx context.Context, db *gorm.DB, system *System) error
	Update(ctx context.Context, db *gorm.DB, system *System) error
	ReplaceFeatures(ctx context.Context, db *gorm.DB, systemID int64, features []SystemFeature) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error
}
