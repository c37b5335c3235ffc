package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/agency-planner/internal/domain/client/entity"
)

// ObjectivePostgres implements ObjectiveRepository for PostgreSQL
type ObjectivePostgres struct {
	pool *pgxpool.Pool
}

// NewObjectivePostgres creates a new PostgreSQL objective repository
func NewObjectivePostgres(pool *pgxpool.Pool) *ObjectivePostgres {
	return &ObjectivePostgres{pool: pool}
}

// Create inserts a new objective
func (r *ObjectivePostgres) Create(ctx context.Context, o *entity.Objective) error {
	query := `
		INSERT INTO objectives (id, client_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		o.ID,
		o.ClientID,
		o.Title,
		o.Description,
		o.CreatedAt,
		o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting objective: %w", err)
	}

	return nil
}

// GetByID retrieves an objective by ID
func (r *ObjectivePostgres) GetByID(ctx context.Context, id string) (*entity.Objective, error) {
	query := `
		SELECT id, client_id, title, description, created_at, updated_at
		FROM objectives
		WHERE id = $1
	`

	var o entity.Objective
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID,
		&o.ClientID,
		&o.Title,
		&o.Description,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning objective: %w", err)
	}

	return &o, nil
}

// ListByClient retrieves a client's objectives in creation order
func (r *ObjectivePostgres) ListByClient(ctx context.Context, clientID string) ([]entity.Objective, error) {
	query := `
		SELECT id, client_id, title, description, created_at, updated_at
		FROM objectives
		WHERE client_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("querying objectives: %w", err)
	}
	defer rows.Close()

	var objectives []entity.Objective
	for rows.Next() {
		var o entity.Objective
		err := rows.Scan(
			&o.ID,
			&o.ClientID,
			&o.Title,
			&o.Description,
			&o.CreatedAt,
			&o.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		objectives = append(objectives, o)
	}

	return objectives, rows.Err()
}

// Update updates an existing objective
func (r *ObjectivePostgres) Update(ctx context.Context, o *entity.Objective) error {
	query := `
		UPDATE objectives
		SET title = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, o.ID, o.Title, o.Description, time.Now())
	if err != nil {
		return fmt.Errorf("updating objective: %w", err)
	}

	return nil
}

// Delete removes an objective
func (r *ObjectivePostgres) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM objectives WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting objective: %w", err)
	}
	return nil
}
