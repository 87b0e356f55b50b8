package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Response, error)
	GetByID(ctx context.Context, id string) (*Response, error)
	Search(ctx context.Context, query string) ([]Response, error)
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Delete(ctx context.Context, id string) error
}

type ListRequest struct {
	Category  string
	Secretary string
	Search    string
	OnlyNew   bool
	Highlight *bool
}

type CreateRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription *string  `json:"fullDescription"`
	TargetAudience  *string  `json:"targetAudience"`
	Secretary       string   `json:"secretary"`
	LaunchYear      *int     `json:"launchYear"`
	Category        string   `json:"category"`
	Highlight       *bool    `json:"highlight"`
	IconURL         *string  `json:"iconUrl"`
	AccessURL       *string  `json:"accessUrl"`
	PWAURL          *string  `json:"pwaUrl"`
	UsageCount      *int64   `json:"usageCount"`
	DownloadCount   *int64   `json:"downloadCount"`
	Features        []string `json:"features"`
}

type UpdateRequest struct {
	ID              string    `json:"id"`
	Name            *string   `json:"name,omitempty"`
	Description     *string   `json:"description,omitempty"`
	FullDescription *string   `json:"fullDescription,omitempty"`
	TargetAudience  *string   `json:"targetAudience,omitempty"`
	Secretary       *string   `json:"secretary,omitempty"`
	LaunchYear      *int      `json:"launchYear,omitempty"`
	Category        *string   `json:"category,omitempty"`
	Highlight       *bool     `json:"highlight,omitempty"`
	IconURL         *string   `json:"iconUrl,omitempty"`
	AccessURL       *string   `json:"accessUrl,omitempty"`
	PWAURL          *string   `json:"pwaUrl,omitempty"`
	UsageCount      *int64    `json:"usageCount,omitempty"`
	DownloadCount   *int64    `json:"downloadCount,omitempty"`
	Features        *[]string `json:"features,omitempty"`
}

// Response is the API shape of a system: a fixed struct-to-struct transform
// of the stored row plus the derived novelty fields.
type Response struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	FullDescription *string          `json:"fullDescription,omitempty"`
	TargetAudience  *string          `json:"targetAudience,omitempty"`
	Secretary       string           `json:"secretary"`
	LaunchYear      *int             `json:"launchYear,omitempty"`
	Category        string           `json:"category"`
	Highlight       bool             `json:"highlight"`
	IconURL         *string          `json:"iconUrl,omitempty"`
	AccessURL       *string          `json:"accessUrl,omitempty"`
	PWAURL          *string          `json:"pwaUrl,omitempty"`
	UsageCount      int64            `json:"usageCount"`
	DownloadCount   int64            `json:"downloadCount"`
	Rating          *float64         `json:"rating"`
	ReviewCount     int              `json:"reviewCount"`
	Features        []string         `json:"features"`
	Reviews         []ReviewResponse `json:"reviews"`
	IsNew           bool             `json:"isNew"`
	DaysRemaining   int              `json:"daysRemaining"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

type ReviewResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

var (
	ErrNotFound           = errors.New("system_not_found")
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidName        = errors.New("invalid_name")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidSecretary   = errors.New("invalid_secretary")
	ErrInvalidCategory    = errors.New("invalid_category")
	ErrInvalidQuery       = errors.New("invalid_query")
)
