package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vadim/agency-planner/internal/domain/client/dao"
	"github.com/vadim/agency-planner/internal/domain/client/entity"
)

// Service handles business logic for clients and their objectives
type Service struct {
	clients    dao.ClientRepository
	objectives dao.ObjectiveRepository
}

// New creates a new client service
func New(clients dao.ClientRepository, objectives dao.ObjectiveRepository) *Service {
	return &Service{
		clients:    clients,
		objectives: objectives,
	}
}

// CreateClientInput represents input for creating a client
type CreateClientInput struct {
	Name         string
	Segment      string
	ContactEmail string
}

// CreateClient creates a new client
func (s *Service) CreateClient(ctx context.Context, in CreateClientInput) (*entity.Client, error) {
	now := time.Now()

	c := &entity.Client{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Segment:      in.Segment,
		ContactEmail: in.ContactEmail,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.clients.Create(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// GetClient retrieves a client by ID
func (s *Service) GetClient(ctx context.Context, id string) (*entity.Client, error) {
	c, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, entity.ErrClientNotFound
	}
	return c, nil
}

// UpdateClientInput represents input for updating a client
type UpdateClientInput struct {
	ID           string
	Name         *string
	Segment      *string
	ContactEmail *string
}

// UpdateClient updates an existing client
func (s *Service) UpdateClient(ctx context.Context, in UpdateClientInput) (*entity.Client, error) {
	c, err := s.GetClient(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Segment != nil {
		c.Segment = *in.Segment
	}
	if in.ContactEmail != nil {
		c.ContactEmail = *in.ContactEmail
	}
	c.UpdatedAt = time.Now()

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := s.clients.Update(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// StoreSWOT persists a generated SWOT analysis on the client
func (s *Service) StoreSWOT(ctx context.Context, clientID string, swot *entity.SWOT) error {
	if _, err := s.GetClient(ctx, clientID); err != nil {
		return err
	}
	return s.clients.UpdateSWOT(ctx, clientID, swot)
}

// DeleteClient removes a client
func (s *Service) DeleteClient(ctx context.Context, id string) error {
	if _, err := s.GetClient(ctx, id); err != nil {
		return err
	}
	return s.clients.Delete(ctx, id)
}

// ListClients retrieves all clients
func (s *Service) ListClients(ctx context.Context) ([]entity.Client, error) {
	return s.clients.List(ctx)
}

// CreateObjectiveInput represents input for creating an objective
type CreateObjectiveInput struct {
	ClientID    string
	Title       string
	Description string
}

// CreateObjective creates a new strategic objective for a client
func (s *Service) CreateObjective(ctx context.Context, in CreateObjectiveInput) (*entity.Objective, error) {
	if _, err := s.GetClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &entity.Objective{
		ID:          uuid.New().String(),
		ClientID:    in.ClientID,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := s.objectives.Create(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// ListObjectives retrieves a client's objectives in creation order
func (s *Service) ListObjectives(ctx context.Context, clientID string) ([]entity.Objective, error) {
	return s.objectives.ListByClient(ctx, clientID)
}

// UpdateObjectiveInput represents input for updating an objective
type UpdateObjectiveInput struct {
	ID          string
	Title       *string
	Description *string
}

// UpdateObjective updates an existing objective
func (s *Service) UpdateObjective(ctx context.Context, in UpdateObjectiveInput) (*entity.Objective, error) {
	o, err := s.objectives.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, entity.ErrObjectiveNotFound
	}

	if in.Title != nil {
		o.Title = *in.Title
	}
	if in.Description != nil {
		o.Description = *in.Description
	}
	o.UpdatedAt = time.Now()

	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := s.objectives.Update(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

// DeleteObjective removes an objective
func (s *Service) DeleteObjective(ctx context.Context, id string) error {
	o, err := s.objectives.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o == nil {
		return entity.ErrObjectiveNotFound
	}
	return s.objectives.Delete(ctx, id)
}
