package dao

import (
	"context"

	"github.com/vadim/agency-planner/internal/domain/client/entity"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	// Create inserts a new client
	Create(ctx context.Context, c *entity.Client) error

	// GetByID retrieves a client by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*entity.Client, error)

	// Update updates an existing client
	Update(ctx context.Context, c *entity.Client) error

	// UpdateSWOT stores a generated SWOT analysis on the client
	UpdateSWOT(ctx context.Context, id string, swot *entity.SWOT) error

	// Delete removes a client by ID
	Delete(ctx context.Context, id string) error

	// List retrieves all clients ordered by name
	List(ctx context.Context) ([]entity.Client, error)
}

// ObjectiveRepository defines the interface for objective data access
type ObjectiveRepository interface {
	// Create inserts a new objective
	Create(ctx context.Context, o *entity.Objective) error

	// GetByID retrieves an objective by ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*entity.Objective, error)

	// ListByClient retrieves a client's objectives in creation order.
	// The order matters: the schedule generator rotates through it.
	ListByClient(ctx context.Context, clientID string) ([]entity.Objective, error)

	// Update updates an existing objective
	Update(ctx context.Context, o *entity.Objective) error

	// Delete removes an objective by ID
	Delete(ctx context.Context, id string) error
}
