package repository

import (
	"context"
	"strings"

	"github.com/slzdigital/catalogo/internal/system/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

// List applies the optional filters with AND semantics and joins features
// and reviews into each row. Ordering is newest first, id as tiebreak so
// equal timestamps stay stable.
func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.Filter) ([]domain.System, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.System{}).
		Preload("Features", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		})

	if filter.Category != "" {
		stmt = stmt.Where("category_code = ?", filter.Category)
	}
	if filter.Secretary != "" {
		stmt = stmt.Where("secretary_code = ?", filter.Secretary)
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + search + "%"
		stmt = stmt.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if filter.CreatedAfter != nil {
		stmt = stmt.Where("created_at > ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		stmt = stmt.Where("created_at <= ?", *filter.CreatedBefore)
	}
	if filter.Highlight != nil {
		stmt = stmt.Where("highlight = ?", *filter.Highlight)
	}

	var items []domain.System
	if err := stmt.Order("created_at DESC").Order("id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.System, error) {
	var system domain.System
	err := db.WithContext(ctx).
		Preload("Features", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Preload("Reviews", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("created_at DESC")
		}).
		Where("id = ?", id).
		First(&system).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &system, nil
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, system *domain.System) error {
	if system == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Create(system).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, system *domain.System) error {
	if system == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE systems
		 SET name = ?, description = ?, full_description = ?, target_audience = ?,
		     secretary_code = ?, launch_year = ?, category_code = ?, highlight = ?,
		     icon_url = ?, access_url = ?, pwa_url = ?, usage_count = ?, download_count = ?,
		     updated_at = ?
		 WHERE id = ?`,
		system.Name,
		system.Description,
		system.FullDescription,
		system.TargetAudience,
		system.SecretaryCode,
		system.LaunchYear,
		system.CategoryCode,
		system.Highlight,
		system.IconURL,
		system.AccessURL,
		system.PWAURL,
		system.UsageCount,
		system.DownloadCount,
		system.UpdatedAt,
		system.ID,
	).Error
}

func (r *repo) ReplaceFeatures(ctx context.Context, db *gorm.DB, systemID int64, features []domain.SystemFeature) error {
	if err := db.WithContext(ctx).Exec(`DELETE FROM system_features WHERE system_id = ?`, systemID).Error; err != nil {
		return err
	}
	if len(features) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&features).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	// Child rows (features, reviews, demographics) go with the system via
	// ON DELETE CASCADE; features are removed explicitly for engines running
	// without foreign keys enabled.
	if err := db.WithContext(ctx).Exec(`DELETE FROM system_features WHERE system_id = ?`, id).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Exec(`DELETE FROM systems WHERE id = ?`, id).Error
}
