package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vadim/agency-planner/internal/domain/plan/dao"
	"github.com/vadim/agency-planner/internal/domain/plan/entity"
)

// Service handles business logic for plans
type Service struct {
	plans dao.PlanRepository
}

// New creates a new plan service
func New(plans dao.PlanRepository) *Service {
	return &Service{plans: plans}
}

// CreateInput represents input for creating a plan
type CreateInput struct {
	ClientID      string
	Title         string
	MonthOfRecord time.Time
}

// CreatePlan creates a new monthly plan
func (s *Service) CreatePlan(ctx context.Context, in CreateInput) (*entity.Plan, error) {
	now := time.Now()

	p := &entity.Plan{
		ID:            uuid.New().String(),
		ClientID:      in.ClientID,
		Title:         in.Title,
		MonthOfRecord: in.MonthOfRecord,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	p.NormalizeMonth()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.plans.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetPlan retrieves a plan by ID
func (s *Service) GetPlan(ctx context.Context, id string) (*entity.Plan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, entity.ErrPlanNotFound
	}
	return p, nil
}

// UpdateInput represents input for updating a plan
type UpdateInput struct {
	ID            string
	Title         *string
	MonthOfRecord *time.Time
}

// UpdatePlan updates an existing plan
func (s *Service) UpdatePlan(ctx context.Context, in UpdateInput) (*entity.Plan, error) {
	p, err := s.GetPlan(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.MonthOfRecord != nil {
		p.MonthOfRecord = *in.MonthOfRecord
		p.NormalizeMonth()
	}
	p.UpdatedAt = time.Now()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	if err := s.plans.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeletePlan removes a plan and all of its planned posts
func (s *Service) DeletePlan(ctx context.Context, id string) error {
	if _, err := s.GetPlan(ctx, id); err != nil {
		return err
	}
	return s.plans.Delete(ctx, id)
}

// ListInput represents input for listing plans
type ListInput struct {
	ClientID string
	Year     *int
	Month    *int
}

// ListPlans retrieves plans with filtering
func (s *Service) ListPlans(ctx context.Context, in ListInput) ([]entity.Plan, error) {
	return s.plans.List(ctx, dao.PlanFilter{
		ClientID: in.ClientID,
		Year:     in.Year,
		Month:    in.Month,
	})
}
