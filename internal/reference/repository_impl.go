package reference

import (
	"context"

	"github.com/slzdigital/catalogo/internal/reference/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name FROM categories ORDER BY name`).
		Scan(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *repository) ListSecretaries(ctx context.Context) ([]domain.Secretary, error) {
	var secretaries []domain.Secretary
	err := r.db.WithContext(ctx).
		Raw(`SELECT code, name FROM secretaries ORDER BY code`).
		Scan(&secretaries).Error
	if err != nil {
		return nil, err
	}
	return secretaries, nil
}
