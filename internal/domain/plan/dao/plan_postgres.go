package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/agency-planner/internal/domain/plan/entity"
)

// PlanPostgres implements PlanRepository for PostgreSQL
type PlanPostgres struct {
	pool *pgxpool.Pool
}

// NewPlanPostgres creates a new PostgreSQL plan repository
func NewPlanPostgres(pool *pgxpool.Pool) *PlanPostgres {
	return &PlanPostgres{pool: pool}
}

// Create inserts a new plan
func (r *PlanPostgres) Create(ctx context.Context, p *entity.Plan) error {
	query := `
		INSERT INTO plans (id, client_id, title, month_of_record, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.ClientID,
		p.Title,
		p.MonthOfRecord,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}

	return nil
}

// GetByID retrieves a plan by ID
func (r *PlanPostgres) GetByID(ctx context.Context, id string) (*entity.Plan, error) {
	query := `
		SELECT id, client_id, title, month_of_record, created_at, updated_at
		FROM plans
		WHERE id = $1
	`

	var p entity.Plan
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.ClientID,
		&p.Title,
		&p.MonthOfRecord,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning plan: %w", err)
	}

	return &p, nil
}

// Update updates an existing plan
func (r *PlanPostgres) Update(ctx context.Context, p *entity.Plan) error {
	query := `
		UPDATE plans
		SET title = $2, month_of_record = $3, updated_at = $4
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, p.ID, p.Title, p.MonthOfRecord, time.Now())
	if err != nil {
		return fmt.Errorf("updating plan: %w", err)
	}

	return nil
}

// Delete removes a plan and cascades to its planned posts in one transaction
func (r *PlanPostgres) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM planned_posts WHERE plan_id = $1", id); err != nil {
		return fmt.Errorf("deleting plan posts: %w", err)
	}
	if _, err := tx.Exec(ctx, "DELETE FROM plans WHERE id = $1", id); err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}

// List retrieves plans matching the filter
func (r *PlanPostgres) List(ctx context.Context, filter PlanFilter) ([]entity.Plan, error) {
	query := `
		SELECT id, client_id, title, month_of_record, created_at, updated_at
		FROM plans
		WHERE 1=1
	`
	args := []interface{}{}
	argNum := 1

	if filter.ClientID != "" {
		query += fmt.Sprintf(" AND client_id = $%d", argNum)
		args = append(args, filter.ClientID)
		argNum++
	}

	if filter.Year != nil && filter.Month != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM month_of_record) = $%d", argNum)
		args = append(args, *filter.Year)
		argNum++
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM month_of_record) = $%d", argNum)
		args = append(args, *filter.Month)
		argNum++
	}

	query += " ORDER BY month_of_record DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying plans: %w", err)
	}
	defer rows.Close()

	var plans []entity.Plan
	for rows.Next() {
		var p entity.Plan
		err := rows.Scan(
			&p.ID,
			&p.ClientID,
			&p.Title,
			&p.MonthOfRecord,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		plans = append(plans, p)
	}

	return plans, rows.Err()
}
