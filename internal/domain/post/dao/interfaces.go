package dao

import (
	"context"
	"time"

	"github.com/vadim/agency-planner/internal/domain/post/entity"
)

// PostFilter contains filters for listing planned posts
type PostFilter struct {
	PlanID   string
	ClientID string
	Status   *entity.PostStatus
	Year     *int
	Month    *int
}

// ListOptions contains pagination and sorting options
type ListOptions struct {
	Limit  int
	Offset int
	SortBy string // "scheduled_date", "created_at", "updated_at"
	Desc   bool
}

// PostRepository defines the interface for planned post data access
type PostRepository interface {
	// CreateBatch inserts all posts in a single transactional batch.
	// The insert is all-or-nothing; no chunking or retrying happens here.
	CreateBatch(ctx context.Context, posts []*entity.PlannedPost) error

	// GetByID retrieves a post by its ID, (nil, nil) when absent
	GetByID(ctx context.Context, id string) (*entity.PlannedPost, error)

	// List retrieves posts with optional filtering and pagination
	List(ctx context.Context, filter PostFilter, opts ListOptions) ([]entity.PlannedPost, error)

	// Count returns the total number of posts matching the filter
	Count(ctx context.Context, filter PostFilter) (int64, error)

	// UpdateScheduledDate mutates only the scheduled date and the
	// last-modified timestamp of a post
	UpdateScheduledDate(ctx context.Context, id string, date, updatedAt time.Time) error

	// UpdateStatus updates only the workflow status
	UpdateStatus(ctx context.Context, id string, status entity.PostStatus) error

	// Delete removes a post by ID
	Delete(ctx context.Context, id string) error

	// DeleteDraftsByPlan removes all draft posts of a plan and returns
	// how many rows were deleted
	DeleteDraftsByPlan(ctx context.Context, planID string) (int64, error)

	// ListByPlanAndDate retrieves posts of a plan scheduled on the given
	// calendar date, excluding excludeID (used for conflict detection)
	ListByPlanAndDate(ctx context.Context, planID string, date time.Time, excludeID string) ([]entity.PlannedPost, error)

	// ListScheduledOn retrieves unpublished posts scheduled on the given
	// calendar date across all plans (used by the reminder scheduler)
	ListScheduledOn(ctx context.Context, date time.Time) ([]entity.PlannedPost, error)
}

// AuditRepository defines the interface for the append-only audit trail
type AuditRepository interface {
	// Create appends one audit entry
	Create(ctx context.Context, e *entity.AuditEntry) error

	// ListByPost retrieves audit entries for a post, newest first
	ListByPost(ctx context.Context, postID string) ([]entity.AuditEntry, error)
}
