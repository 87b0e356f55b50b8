package domain

import (
	"context"
	"errors"
)

type Service interface {
	GetStats(ctx context.Context, req StatsRequest) (*Stats, error)
}

// StatsRequest optionally scopes the dashboard to one department bucket.
type StatsRequest struct {
	Department string
}

// Stats is the dashboard summary, recomputed fresh on every request.
type Stats struct {
	TotalSystems       int               `json:"totalSystems"`
	TotalDownloads     int64             `json:"totalDownloads"`
	TotalUsage         int64             `json:"totalUsage"`
	AverageRating      float64           `json:"averageRating"`
	TotalReviews       int64             `json:"totalReviews"`
	Departments        []DepartmentStats `json:"departments"`
	RatingDistribution []RatingBin       `json:"ratingDistribution"`
}

// DepartmentStats is one bucket's share of the catalog.
type DepartmentStats struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Systems       int     `json:"systems"`
	Downloads     int64   `json:"downloads"`
	Usage         int64   `json:"usage"`
	AverageRating float64 `json:"averageRating"`
}

// RatingBin is one integer bin of the rating distribution. Bin 0 is the
// sentinel for unrated systems; bins 1..5 hold floor(rating).
type RatingBin struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// SystemRow is the projection the aggregation works over.
type SystemRow struct {
	SecretaryCode string   `gorm:"column:secretary_code"`
	DownloadCount int64    `gorm:"column:download_count"`
	UsageCount    int64    `gorm:"column:usage_count"`
	Rating        *float64 `gorm:"column:rating"`
	ReviewCount   int64    `gorm:"column:review_count"`
}

type Repository interface {
	ListSystemRows(ctx context.Context) ([]SystemRow, error)
}

var ErrInvalidDepartment = errors.New("invalid_department")
