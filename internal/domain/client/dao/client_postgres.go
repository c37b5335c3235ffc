package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/agency-planner/internal/domain/client/entity"
)

// ClientPostgres implements ClientRepository for PostgreSQL
type ClientPostgres struct {
	pool *pgxpool.Pool
}

// NewClientPostgres creates a new PostgreSQL client repository
func NewClientPostgres(pool *pgxpool.Pool) *ClientPostgres {
	return &ClientPostgres{pool: pool}
}

// Create inserts a new client
func (r *ClientPostgres) Create(ctx context.Context, c *entity.Client) error {
	query := `
		INSERT INTO clients (id, name, segment, contact_email, swot, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Name,
		c.Segment,
		c.ContactEmail,
		c.SWOT,
		c.CreatedAt,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}

	return nil
}

// GetByID retrieves a client by ID
func (r *ClientPostgres) GetByID(ctx context.Context, id string) (*entity.Client, error) {
	query := `
		SELECT id, name, segment, contact_email, swot, created_at, updated_at
		FROM clients
		WHERE id = $1
	`

	var c entity.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Segment,
		&c.ContactEmail,
		&c.SWOT,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning client: %w", err)
	}

	return &c, nil
}

// Update updates an existing client
func (r *ClientPostgres) Update(ctx context.Context, c *entity.Client) error {
	query := `
		UPDATE clients
		SET name = $2, segment = $3, contact_email = $4, updated_at = $5
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Segment, c.ContactEmail, time.Now())
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	return nil
}

// UpdateSWOT stores a generated SWOT analysis on the client
func (r *ClientPostgres) UpdateSWOT(ctx context.Context, id string, swot *entity.SWOT) error {
	query := `
		UPDATE clients
		SET swot = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, swot, time.Now())
	if err != nil {
		return fmt.Errorf("updating client swot: %w", err)
	}

	return nil
}

// Delete removes a client
func (r *ClientPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

// List retrieves all clients ordered by name
func (r *ClientPostgres) List(ctx context.Context) ([]entity.Client, error) {
	query := `
		SELECT id, name, segment, contact_email, swot, created_at, updated_at
		FROM clients
		ORDER BY name ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	var clients []entity.Client
	for rows.Next() {
		var c entity.Client
		err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Segment,
			&c.ContactEmail,
			&c.SWOT,
			&c.CreatedAt,
			&c.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		clients = append(clients, c)
	}

	return clients, rows.Err()
}
