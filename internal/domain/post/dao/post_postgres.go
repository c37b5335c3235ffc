package dao

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vadim/agency-planner/internal/domain/post/entity"
)

const postColumns = `id, plan_id, client_id, project_id, objective_id, title, format,
       content_type, structured_text, scheduled_date, status, strategic_context,
       created_at, updated_at`

// PostPostgres implements PostRepository for PostgreSQL
type PostPostgres struct {
	pool *pgxpool.Pool
}

// NewPostPostgres creates a new PostgreSQL planned post repository
func NewPostPostgres(pool *pgxpool.Pool) *PostPostgres {
	return &PostPostgres{pool: pool}
}

// CreateBatch inserts all posts in one transactional batch
func (r *PostPostgres) CreateBatch(ctx context.Context, posts []*entity.PlannedPost) error {
	if len(posts) == 0 {
		return nil
	}

	query := `
		INSERT INTO planned_posts (id, plan_id, client_id, project_id, objective_id,
		                           title, format, content_type, structured_text,
		                           scheduled_date, status, strategic_context,
		                           created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, p := range posts {
		var projectID, objectiveID *string
		if p.ProjectID != "" {
			projectID = &p.ProjectID
		}
		if p.ObjectiveID != "" {
			objectiveID = &p.ObjectiveID
		}

		batch.Queue(query,
			p.ID,
			p.PlanID,
			p.ClientID,
			projectID,
			objectiveID,
			p.Title,
			p.Format,
			p.ContentType,
			p.StructuredText,
			p.ScheduledDate,
			p.Status,
			p.Strategic,
			p.CreatedAt,
			p.UpdatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range posts {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("inserting planned post: %w", err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("closing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}

	return nil
}

// GetByID retrieves a post by ID
func (r *PostPostgres) GetByID(ctx context.Context, id string) (*entity.PlannedPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM planned_posts WHERE id = $1`, postColumns)

	row := r.pool.QueryRow(ctx, query, id)

	post, err := scanPost(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning planned post: %w", err)
	}

	return post, nil
}

// rowScanner abstracts pgx.Row and pgx.Rows for shared scanning
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*entity.PlannedPost, error) {
	var post entity.PlannedPost
	var projectID, objectiveID *string

	err := row.Scan(
		&post.ID,
		&post.PlanID,
		&post.ClientID,
		&projectID,
		&objectiveID,
		&post.Title,
		&post.Format,
		&post.ContentType,
		&post.StructuredText,
		&post.ScheduledDate,
		&post.Status,
		&post.Strategic,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if projectID != nil {
		post.ProjectID = *projectID
	}
	if objectiveID != nil {
		post.ObjectiveID = *objectiveID
	}

	return &post, nil
}

// List retrieves posts with filtering
func (r *PostPostgres) List(ctx context.Context, filter PostFilter, opts ListOptions) ([]entity.PlannedPost, error) {
	query := fmt.Sprintf(`SELECT %s FROM planned_posts WHERE 1=1`, postColumns)
	args := []interface{}{}
	argNum := 1

	if filter.PlanID != "" {
		query += fmt.Sprintf(" AND plan_id = $%d", argNum)
		args = append(args, filter.PlanID)
		argNum++
	}

	if filter.ClientID != "" {
		query += fmt.Sprintf(" AND client_id = $%d", argNum)
		args = append(args, filter.ClientID)
		argNum++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, *filter.Status)
		argNum++
	}

	if filter.Year != nil && filter.Month != nil {
		query += fmt.Sprintf(" AND EXTRACT(YEAR FROM scheduled_date) = $%d", argNum)
		args = append(args, *filter.Year)
		argNum++
		query += fmt.Sprintf(" AND EXTRACT(MONTH FROM scheduled_date) = $%d", argNum)
		args = append(args, *filter.Month)
		argNum++
	}

	// Sorting
	sortCol := "scheduled_date"
	if opts.SortBy != "" {
		sortCol = opts.SortBy
	}
	order := "ASC"
	if opts.Desc {
		order = "DESC"
	}
	query += fmt.Sprintf(" ORDER BY %s %s", sortCol, order)

	// Pagination
	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argNum)
		args = append(args, opts.Limit)
		argNum++
	}
	if opts.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, opts.Offset)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying planned posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

func collectPosts(rows pgx.Rows) ([]entity.PlannedPost, error) {
	var posts []entity.PlannedPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

// Count returns the total count of posts matching the filter
func (r *PostPostgres) Count(ctx context.Context, filter PostFilter) (int64, error) {
	query := "SELECT COUNT(*) FROM planned_posts WHERE 1=1"
	args := []interface{}{}
	argNum := 1

	if filter.PlanID != "" {
		query += fmt.Sprintf(" AND plan_id = $%d", argNum)
		args = append(args, filter.PlanID)
		argNum++
	}

	if filter.ClientID != "" {
		query += fmt.Sprintf(" AND client_id = $%d", argNum)
		args = append(args, filter.ClientID)
		argNum++
	}

	if filter.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argNum)
		args = append(args, *filter.Status)
	}

	var count int64
	err := r.pool.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting planned posts: %w", err)
	}

	return count, nil
}

// UpdateScheduledDate mutates only the scheduled date and updated_at.
// The caller supplies updatedAt so the stored row matches the entity it
// returns.
func (r *PostPostgres) UpdateScheduledDate(ctx context.Context, id string, date, updatedAt time.Time) error {
	query := `
		UPDATE planned_posts
		SET scheduled_date = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, date, updatedAt)
	if err != nil {
		return fmt.Errorf("updating scheduled date: %w", err)
	}

	return nil
}

// UpdateStatus updates only the workflow status
func (r *PostPostgres) UpdateStatus(ctx context.Context, id string, status entity.PostStatus) error {
	query := `
		UPDATE planned_posts
		SET status = $2, updated_at = $3
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return fmt.Errorf("updating status: %w", err)
	}

	return nil
}

// Delete removes a post
func (r *PostPostgres) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM planned_posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting planned post: %w", err)
	}
	return nil
}

// DeleteDraftsByPlan removes all draft posts of a plan
func (r *PostPostgres) DeleteDraftsByPlan(ctx context.Context, planID string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		"DELETE FROM planned_posts WHERE plan_id = $1 AND status = $2",
		planID, entity.PostStatusDraft,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting draft posts: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ListByPlanAndDate retrieves posts of a plan on a calendar date, excluding one post
func (r *PostPostgres) ListByPlanAndDate(ctx context.Context, planID string, date time.Time, excludeID string) ([]entity.PlannedPost, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM planned_posts
		WHERE plan_id = $1 AND scheduled_date = $2 AND id <> $3
		ORDER BY created_at ASC
	`, postColumns)

	rows, err := r.pool.Query(ctx, query, planID, date, excludeID)
	if err != nil {
		return nil, fmt.Errorf("querying conflicting posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// ListScheduledOn retrieves unpublished posts scheduled on a calendar date
func (r *PostPostgres) ListScheduledOn(ctx context.Context, date time.Time) ([]entity.PlannedPost, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM planned_posts
		WHERE scheduled_date = $1 AND status <> $2
		ORDER BY client_id, created_at ASC
	`, postColumns)

	rows, err := r.pool.Query(ctx, query, date, entity.PostStatusPublished)
	if err != nil {
		return nil, fmt.Errorf("querying due posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}
