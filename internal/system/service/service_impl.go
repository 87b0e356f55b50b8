package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/slzdigital/catalogo/internal/clock"
	"github.com/slzdigital/catalogo/internal/system/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
	Clock clock.Clock
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
	clock clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("system.service"),
		repo:  p.Repo,
		genID: p.GenID,
		clock: p.Clock,
	}
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) ([]domain.Response, error) {
	now := s.clock.Now()

	filter := domain.Filter{
		Category:  strings.TrimSpace(req.Category),
		Secretary: strings.ToUpper(strings.TrimSpace(req.Secretary)),
		Search:    strings.TrimSpace(req.Search),
		Highlight: req.Highlight,
	}
	if req.OnlyNew {
		// Trailing window: bounded on both sides so future-dated rows
		// (clock skew) never list as new.
		cutoff := now.AddDate(0, 0, -domain.NoveltyWindowDays)
		filter.CreatedAfter = &cutoff
		filter.CreatedBefore = &now
	}

	items, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, s.toResponse(&items[i], now))
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Response, error) {
	systemID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, systemID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := s.toResponse(item, s.clock.Now())
	return &resp, nil
}

func (s *Service) Search(ctx context.Context, query string) ([]domain.Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidQuery
	}
	return s.List(ctx, domain.ListRequest{Search: query})
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.ErrInvalidDescription
	}
	secretary := strings.ToUpper(strings.TrimSpace(req.Secretary))
	if secretary == "" {
		return nil, domain.ErrInvalidSecretary
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, domain.ErrInvalidCategory
	}

	now := s.clock.Now()
	record := &domain.System{
		ID:              s.genID.Generate(),
		Name:            name,
		Description:     description,
		FullDescription: trimPtr(req.FullDescription),
		TargetAudience:  trimPtr(req.TargetAudience),
		SecretaryCode:   secretary,
		LaunchYear:      req.LaunchYear,
		CategoryCode:    category,
		IconURL:         trimPtr(req.IconURL),
		AccessURL:       trimPtr(req.AccessURL),
		PWAURL:          trimPtr(req.PWAURL),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Highlight != nil {
		record.Highlight = *req.Highlight
	}
	if req.UsageCount != nil {
		record.UsageCount = *req.UsageCount
	}
	if req.DownloadCount != nil {
		record.DownloadCount = *req.DownloadCount
	}
	record.Features = s.buildFeatures(record.ID, req.Features)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Create(ctx, tx, record)
	})
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(record, now)
	return &resp, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	systemID, err := parseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, systemID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, domain.ErrInvalidDescription
		}
		item.Description = description
	}
	if req.FullDescription != nil {
		item.FullDescription = trimPtr(req.FullDescription)
	}
	if req.TargetAudience != nil {
		item.TargetAudience = trimPtr(req.TargetAudience)
	}
	if req.Secretary != nil {
		secretary := strings.ToUpper(strings.TrimSpace(*req.Secretary))
		if secretary == "" {
			return nil, domain.ErrInvalidSecretary
		}
		item.SecretaryCode = secretary
	}
	if req.LaunchYear != nil {
		item.LaunchYear = req.LaunchYear
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return nil, domain.ErrInvalidCategory
		}
		item.CategoryCode = category
	}
	if req.Highlight != nil {
		item.Highlight = *req.Highlight
	}
	if req.IconURL != nil {
		item.IconURL = trimPtr(req.IconURL)
	}
	if req.AccessURL != nil {
		item.AccessURL = trimPtr(req.AccessURL)
	}
	if req.PWAURL != nil {
		item.PWAURL = trimPtr(req.PWAURL)
	}
	if req.UsageCount != nil {
		item.UsageCount = *req.UsageCount
	}
	if req.DownloadCount != nil {
		item.DownloadCount = *req.DownloadCount
	}

	now := s.clock.Now()
	item.UpdatedAt = now
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, item); err != nil {
			return err
		}
		if req.Features != nil {
			features := s.buildFeatures(item.ID, *req.Features)
			if err := s.repo.ReplaceFeatures(ctx, tx, item.ID.Int64(), features); err != nil {
				return err
			}
			item.Features = features
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(item, now)
	return &resp, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	systemID, err := parseID(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, systemID.Int64())
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.repo.Delete(ctx, tx, systemID.Int64())
	})
}

func (s *Service) buildFeatures(systemID snowflake.ID, labels []string) []domain.SystemFeature {
	features := make([]domain.SystemFeature, 0, len(labels))
	for i, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		features = append(features, domain.SystemFeature{
			ID:       s.genID.Generate(),
			SystemID: systemID,
			Label:    label,
			Position: i,
		})
	}
	return features
}

func (s *Service) toResponse(item *domain.System, now time.Time) domain.Response {
	isNew, daysRemaining := domain.Novelty(item.CreatedAt, now)

	features := make([]string, 0, len(item.Features))
	for _, f := range item.Features {
		features = append(features, f.Label)
	}

	reviews := make([]domain.ReviewResponse, 0, len(item.Reviews))
	for _, r := range item.Reviews {
		reviews = append(reviews, domain.ReviewResponse{
			ID:        r.ID.String(),
			UserName:  r.UserName,
			Rating:    r.Rating,
			Comment:   r.Comment,
			CreatedAt: r.CreatedAt,
		})
	}

	return domain.Response{
		ID:              item.ID.String(),
		Name:            item.Name,
		Description:     item.Description,
		FullDescription: item.FullDescription,
		TargetAudience:  item.TargetAudience,
		Secretary:       item.SecretaryCode,
		LaunchYear:      item.LaunchYear,
		Category:        item.CategoryCode,
		Highlight:       item.Highlight,
		IconURL:         item.IconURL,
		AccessURL:       item.AccessURL,
		PWAURL:          item.PWAURL,
		UsageCount:      item.UsageCount,
		DownloadCount:   item.DownloadCount,
		Rating:          item.Rating,
		ReviewCount:     item.ReviewCount,
		Features:        features,
		Reviews:         reviews,
		IsNew:           isNew,
		DaysRemaining:   daysRemaining,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

func parseID(value string) (snowflake.ID, error) {
	parsed, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || parsed == 0 {
		return 0, domain.ErrInvalidID
	}
	return parsed, nil
}

func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
