package dao

import (
	"context"

	"github.com/vadim/agency-planner/internal/domain/plan/entity"
)

// PlanFilter contains filters for listing plans
type PlanFilter struct {
	ClientID string
	Year     *int
	Month    *int
}

// PlanRepository defines the interface for plan data access
type PlanRepository interface {
	// Create inserts a new plan
	Create(ctx context.Context, p *entity.Plan) error

	// GetByID retrieves a plan by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*entity.Plan, error)

	// Update updates an existing plan
	Update(ctx context.Context, p *entity.Plan) error

	// Delete removes a plan together with its planned posts
	Delete(ctx context.Context, id string) error

	// List retrieves plans matching the filter, newest month first
	List(ctx context.Context, filter PlanFilter) ([]entity.Plan, error)
}
