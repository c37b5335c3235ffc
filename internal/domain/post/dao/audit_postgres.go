package dao

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/agency-planner/internal/domain/post/entity"
)

// AuditPostgres implements AuditRepository for PostgreSQL
type AuditPostgres struct {
	pool *pgxpool.Pool
}

// NewAuditPostgres creates a new PostgreSQL audit trail repository
func NewAuditPostgres(pool *pgxpool.Pool) *AuditPostgres {
	return &AuditPostgres{pool: pool}
}

// Create appends one audit entry
func (r *AuditPostgres) Create(ctx context.Context, e *entity.AuditEntry) error {
	query := `
		INSERT INTO post_audit_entries (id, post_id, actor_id, action, before_snapshot, after_snapshot, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		e.ID,
		e.PostID,
		e.ActorID,
		e.Action,
		e.Before,
		e.After,
		e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting audit entry: %w", err)
	}

	return nil
}

// ListByPost retrieves audit entries for a post, newest first
func (r *AuditPostgres) ListByPost(ctx context.Context, postID string) ([]entity.AuditEntry, error) {
	query := `
		SELECT id, post_id, actor_id, action, before_snapshot, after_snapshot, created_at
		FROM post_audit_entries
		WHERE post_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("querying audit entries: %w", err)
	}
	defer rows.Close()

	var entries []entity.AuditEntry
	for rows.Next() {
		var e entity.AuditEntry
		err := rows.Scan(
			&e.ID,
			&e.PostID,
			&e.ActorID,
			&e.Action,
			&e.Before,
			&e.After,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
