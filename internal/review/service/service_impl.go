package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/slzdigital/catalogo/internal/clock"
	"github.com/slzdigital/catalogo/internal/review/domain"
	systemdomain "github.com/slzdigital/catalogo/internal/system/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	SystemRepo systemdomain.Repository
	Clock      clock.Clock
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       domain.Repository
	systemRepo systemdomain.Repository
	genID      *snowflake.Node
	clock      clock.Clock
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("review.service"),
		repo:       p.Repo,
		systemRepo: p.SystemRepo,
		genID:      p.GenID,
		clock:      p.Clock,
	}
}

// Submit appends a review and keeps the parent system's denormalized rating
// and count in sync. Insert, optional demographics insert and the aggregate
// update run in one transaction; any failure rolls the whole unit back.
func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (*domain.Response, error) {
	systemID, err := snowflake.ParseString(strings.TrimSpace(req.SystemID))
	if err != nil || systemID == 0 {
		return nil, systemdomain.ErrInvalidID
	}

	userName := strings.TrimSpace(req.UserName)
	if userName == "" {
		return nil, domain.ErrInvalidUserName
	}
	// The rating must be a strict 1..5 integer; zero is rejected rather
	// than treated as "absent".
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}
	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		return nil, domain.ErrInvalidComment
	}
	if req.Demographics != nil && req.Demographics.Age != nil {
		if age := *req.Demographics.Age; age < 0 || age > 130 {
			return nil, domain.ErrInvalidAge
		}
	}

	parent, err := s.systemRepo.FindByID(ctx, s.db, systemID.Int64())
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, systemdomain.ErrNotFound
	}

	review := &systemdomain.Review{
		ID:        s.genID.Generate(),
		SystemID:  systemID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   comment,
		CreatedAt: s.clock.Now(),
	}

	var aggregate domain.Aggregate
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.InsertReview(ctx, tx, review); err != nil {
			return err
		}

		if demographics := buildDemographics(review.ID, req.Demographics, req.Location); demographics != nil {
			if err := s.repo.InsertDemographics(ctx, tx, demographics); err != nil {
				return err
			}
		}

		aggregate, err = s.repo.AggregateForSystem(ctx, tx, systemID.Int64())
		if err != nil {
			return err
		}
		return s.repo.UpdateSystemAggregate(ctx, tx, systemID.Int64(), aggregate)
	})
	if err != nil {
		return nil, err
	}

	return &domain.Response{
		ID:          review.ID.String(),
		SystemID:    systemID.String(),
		UserName:    review.UserName,
		Rating:      review.Rating,
		Comment:     review.Comment,
		CreatedAt:   review.CreatedAt,
		NewRating:   aggregate.Average,
		ReviewCount: aggregate.Count,
	}, nil
}

func buildDemographics(reviewID snowflake.ID, input *domain.DemographicsInput, location *domain.Coordinates) *domain.Demographics {
	if input == nil && location == nil {
		return nil
	}

	demographics := &domain.Demographics{ReviewID: reviewID}
	if input != nil {
		demographics.Race = trimPtr(input.Race)
		demographics.Gender = trimPtr(input.Gender)
		demographics.Age = input.Age
	}
	if location != nil {
		latitude := location.Latitude
		longitude := location.Longitude
		demographics.Latitude = &latitude
		demographics.Longitude = &longitude
	}
	return demographics
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
