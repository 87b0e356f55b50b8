package domain

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListSecretaries(ctx context.Context) ([]Secretary, error)
}
