package repository

import (
	"context"

	"github.com/slzdigital/catalogo/internal/dashboard/domain"
	"gorm.io/gorm"
)

type repo struct {
	db *gorm.DB
}

func Provide(db *gorm.DB) domain.Repository {
	return &repo{db: db}
}

func (r *repo) ListSystemRows(ctx context.Context) ([]domain.SystemRow, error) {
	var rows []domain.SystemRow
	err := r.db.WithContext(ctx).
		Raw(`SELECT secretary_code, download_count, usage_count, rating, review_count FROM systems`).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
