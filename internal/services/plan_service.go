package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/MathLeoYa/inmobiliaria/internal/dtos"
	"github.com/MathLeoYa/inmobiliaria/internal/models"
	"github.com/MathLeoYa/inmobiliaria/internal/repositories"
	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

type PlanService struct {
	planRepo repositories.PlanRepository
}

func NewPlanService(planRepo repositories.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// ListActive returns the publicly visible plans, cheapest first.
func (s *PlanService) ListActive(ctx context.Context) ([]*models.Plan, error) {
	return s.planRepo.ListActive(ctx)
}

func (s *PlanService) Create(ctx context.Context, req dtos.CreatePlanRequest) (*models.Plan, error) {
	plan := &models.Plan{
		ID:             uuid.New(),
		Name:           req.Name,
		Price:          req.Price,
		SalePrice:      req.SalePrice,
		MaxListings:    req.MaxListings,
		MaxPhotos:      req.MaxPhotos,
		DurationDays:   req.DurationDays,
		SearchPriority: req.SearchPriority,
		Description:    req.Description,
		Active:         true,
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// Update rewrites every plan attribute. Existing subscriptions keep the
// limits they were granted only until the next quota evaluation: caps are
// always read through the plan row, so edits take effect immediately.
func (s *PlanService) Update(ctx context.Context, id uuid.UUID, req dtos.UpdatePlanRequest) (*models.Plan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	plan.Name = req.Name
	plan.Price = req.Price
	plan.SalePrice = req.SalePrice
	plan.MaxListings = req.MaxListings
	plan.MaxPhotos = req.MaxPhotos
	plan.DurationDays = req.DurationDays
	plan.SearchPriority = req.SearchPriority
	plan.Description = req.Description
	plan.Active = req.Active

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
