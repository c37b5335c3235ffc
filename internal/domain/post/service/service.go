package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	planent "github.com/vadim/agency-planner/internal/domain/plan/entity"
	"github.com/vadim/agency-planner/internal/domain/post/cadence"
	"github.com/vadim/agency-planner/internal/domain/post/dao"
	"github.com/vadim/agency-planner/internal/domain/post/entity"
)

// defaultValueRotationBase is the modulo base used for brand value rotation
// when the strategic plan carries no values. The historical behavior assumed
// five brand values; the constant makes that default explicit instead of
// baking it into the modulo expression.
const defaultValueRotationBase = 5

// fallbackStructuredText seeds the body of generated posts whose objective
// has no description
const fallbackStructuredText = "Conteúdo a definir com o cliente"

// PlanProvider supplies the plan data the generator needs. Defined here,
// by the consumer; the plan domain's service satisfies it through an adapter.
type PlanProvider interface {
	// PlanInfo returns (nil, nil) when the plan does not exist
	PlanInfo(ctx context.Context, planID string) (*PlanInfo, error)
}

// PlanInfo is the subset of a plan the generator cares about
type PlanInfo struct {
	ID            string
	ClientID      string
	MonthOfRecord time.Time
}

// ObjectiveProvider supplies a client's strategic objectives in a stable
// order. The generator rotates through the returned slice positionally.
type ObjectiveProvider interface {
	ClientObjectives(ctx context.Context, clientID string) ([]ObjectiveInfo, error)
}

// ObjectiveInfo is the subset of an objective the generator cares about
type ObjectiveInfo struct {
	ID          string
	Title       string
	Description string
}

// Service handles business logic for planned posts: bulk schedule
// generation and guarded rescheduling.
type Service struct {
	posts      dao.PostRepository
	audit      dao.AuditRepository
	plans      PlanProvider
	objectives ObjectiveProvider
	loc        *time.Location
	logger     *slog.Logger

	now func() time.Time
}

// New creates a new planned post service. loc is the reference timezone
// used for "today" comparisons.
func New(posts dao.PostRepository, audit dao.AuditRepository, plans PlanProvider, objectives ObjectiveProvider, loc *time.Location, logger *slog.Logger) *Service {
	return &Service{
		posts:      posts,
		audit:      audit,
		plans:      plans,
		objectives: objectives,
		loc:        loc,
		logger:     logger,
		now:        time.Now,
	}
}

// StrategicPlan decorates the strategic context of generated posts.
// Absence does not degrade generation.
type StrategicPlan struct {
	Mission string
	Vision  string
	Values  []string
}

// GenerateInput represents input for generating a month's schedule
type GenerateInput struct {
	PlanID    string
	Quantity  int
	Strategic *StrategicPlan
	ClientID  string // optional override; plan's client used when empty
	ProjectID string

	// ReplaceDrafts deletes the plan's existing draft posts before
	// inserting the new batch. Off by default: repeated generation with
	// identical arguments then produces independent batches.
	ReplaceDrafts bool
}

// GenerateOutput represents output from generating a schedule
type GenerateOutput struct {
	Posts []entity.PlannedPost
	Count int
}

// GenerateSchedule produces exactly Quantity draft posts for the plan's
// reference month, spaced on the Monday/Wednesday/Friday cadence and
// rotated fairly across the client's objectives, then persists them in a
// single bulk insert.
func (s *Service) GenerateSchedule(ctx context.Context, in GenerateInput) (*GenerateOutput, error) {
	if in.Quantity <= 0 {
		return nil, entity.ErrInvalidQuantity
	}

	plan, err := s.plans.PlanInfo(ctx, in.PlanID)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	if plan == nil {
		return nil, planent.ErrPlanNotFound
	}

	clientID := in.ClientID
	if clientID == "" {
		clientID = plan.ClientID
	}

	objectives, err := s.objectives.ClientObjectives(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("loading objectives: %w", err)
	}

	dates := cadence.MonthDates(plan.MonthOfRecord.Year(), plan.MonthOfRecord.Month(), in.Quantity)
	rotation := cadence.ObjectiveIndexes(len(objectives), in.Quantity)

	now := s.now()
	posts := make([]*entity.PlannedPost, 0, in.Quantity)
	for i := 0; i < in.Quantity; i++ {
		title := fmt.Sprintf("Post %d - %s", i+1, dates[i].Format("02/01/2006"))
		text := fallbackStructuredText
		sctx := &entity.StrategicContext{GeneratedAt: now}

		var objectiveID string
		if rotation != nil {
			obj := objectives[rotation[i]]
			objectiveID = obj.ID
			title = fmt.Sprintf("%s - Post %d", obj.Title, i+1)
			if obj.Description != "" {
				text = obj.Description
			}
			sctx.ObjectiveID = obj.ID
		}

		if in.Strategic != nil {
			sctx.Mission = in.Strategic.Mission
			base := valueRotationBase(in.Strategic.Values)
			if idx := i % base; idx < len(in.Strategic.Values) {
				sctx.BrandValue = in.Strategic.Values[idx]
			}
		}

		posts = append(posts, &entity.PlannedPost{
			ID:             uuid.New().String(),
			PlanID:         plan.ID,
			ClientID:       clientID,
			ProjectID:      in.ProjectID,
			ObjectiveID:    objectiveID,
			Title:          title,
			Format:         entity.GeneratedFormats[i%len(entity.GeneratedFormats)],
			ContentType:    entity.DefaultContentType,
			StructuredText: text,
			ScheduledDate:  dates[i],
			Status:         entity.PostStatusDraft,
			Strategic:      sctx,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	if in.ReplaceDrafts {
		deleted, err := s.posts.DeleteDraftsByPlan(ctx, plan.ID)
		if err != nil {
			return nil, fmt.Errorf("replacing drafts: %w", err)
		}
		s.logger.Info("replaced existing drafts", "plan_id", plan.ID, "deleted", deleted)
	}

	if err := s.posts.CreateBatch(ctx, posts); err != nil {
		return nil, fmt.Errorf("persisting schedule: %w", err)
	}

	s.logger.Info("schedule generated",
		"plan_id", plan.ID,
		"requested", in.Quantity,
		"created", len(posts),
	)

	out := make([]entity.PlannedPost, len(posts))
	for i, p := range posts {
		out[i] = *p
	}

	return &GenerateOutput{Posts: out, Count: len(out)}, nil
}

// valueRotationBase returns the modulo base for brand value rotation:
// the number of supplied values, or the documented default when none are.
func valueRotationBase(values []string) int {
	if len(values) == 0 {
		return defaultValueRotationBase
	}
	return len(values)
}

// RescheduleInput represents input for moving one post to a new date
type RescheduleInput struct {
	PostID  string
	NewDate time.Time
	ActorID string
}

// RescheduleOutput represents output from a reschedule. Conflicts is nil
// when no other post of the same plan occupies the new date.
type RescheduleOutput struct {
	Post      *entity.PlannedPost
	Conflicts []entity.PlannedPost
}

// Reschedule moves a post to a new calendar date after validating the move:
// no past dates (relative to "today" in the reference timezone) and no
// touching published posts. Same-day conflicts within the plan are detected
// and reported but never block the operation. A successful move appends a
// best-effort audit entry.
func (s *Service) Reschedule(ctx context.Context, in RescheduleInput) (*RescheduleOutput, error) {
	if in.PostID == "" || in.ActorID == "" || in.NewDate.IsZero() {
		return nil, entity.ErrMissingFields
	}

	newDate := normalizeDate(in.NewDate)
	if newDate.Before(s.today()) {
		return nil, entity.ErrPastDate
	}

	post, err := s.posts.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if post == nil {
		return nil, entity.ErrPostNotFound
	}

	if !post.CanReschedule() {
		return nil, entity.ErrPostPublished
	}

	// Advisory only: a failed scan must not block the reschedule.
	conflicts, err := s.posts.ListByPlanAndDate(ctx, post.PlanID, newDate, post.ID)
	if err != nil {
		s.logger.Warn("conflict scan failed, proceeding without conflicts",
			"post_id", post.ID,
			"error", err,
		)
		conflicts = nil
	}

	before := entity.AuditSnapshot{ScheduledDate: post.ScheduledDate, Title: post.Title}

	movedAt := s.now()
	if err := s.posts.UpdateScheduledDate(ctx, post.ID, newDate, movedAt); err != nil {
		return nil, fmt.Errorf("updating scheduled date: %w", err)
	}

	post.ScheduledDate = newDate
	post.UpdatedAt = movedAt

	// Best effort: the reschedule already succeeded from the caller's
	// point of view.
	entry := &entity.AuditEntry{
		ID:        uuid.New().String(),
		PostID:    post.ID,
		ActorID:   in.ActorID,
		Action:    entity.AuditActionReschedule,
		Before:    before,
		After:     entity.AuditSnapshot{ScheduledDate: newDate, Title: post.Title},
		CreatedAt: s.now(),
	}
	if err := s.audit.Create(ctx, entry); err != nil {
		s.logger.Warn("audit write failed", "post_id", post.ID, "error", err)
	}

	if len(conflicts) == 0 {
		conflicts = nil
	}

	return &RescheduleOutput{Post: post, Conflicts: conflicts}, nil
}

// today returns the current calendar date in the reference timezone,
// represented as a UTC midnight for date-only comparison.
func (s *Service) today() time.Time {
	y, m, d := s.now().In(s.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// normalizeDate strips any time component, keeping the calendar date
func normalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// GetPost retrieves a post by ID
func (s *Service) GetPost(ctx context.Context, id string) (*entity.PlannedPost, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, entity.ErrPostNotFound
	}
	return post, nil
}

// ListInput represents input for listing posts
type ListInput struct {
	PlanID   string
	ClientID string
	Status   *entity.PostStatus
	Year     *int
	Month    *int
	Limit    int
	Offset   int
}

// ListOutput represents output from listing posts
type ListOutput struct {
	Posts []entity.PlannedPost
	Total int64
}

// ListPosts retrieves posts with filtering
func (s *Service) ListPosts(ctx context.Context, in ListInput) (*ListOutput, error) {
	filter := dao.PostFilter{
		PlanID:   in.PlanID,
		ClientID: in.ClientID,
		Status:   in.Status,
		Year:     in.Year,
		Month:    in.Month,
	}

	opts := dao.ListOptions{
		Limit:  in.Limit,
		Offset: in.Offset,
		SortBy: "scheduled_date",
	}
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	posts, err := s.posts.List(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	total, err := s.posts.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListOutput{Posts: posts, Total: total}, nil
}

// DeletePost removes a draft post
func (s *Service) DeletePost(ctx context.Context, id string) error {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if !post.IsDeletable() {
		return entity.ErrPostNotDeletable
	}
	return s.posts.Delete(ctx, id)
}

// TransitionStatus moves a post one step forward through the workflow
func (s *Service) TransitionStatus(ctx context.Context, id string, next entity.PostStatus) (*entity.PlannedPost, error) {
	post, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if !post.CanTransitionTo(next) {
		return nil, entity.ErrInvalidTransition
	}

	if err := s.posts.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	post.Status = next
	post.UpdatedAt = s.now()
	return post, nil
}

// AuditTrail retrieves the reschedule history of a post, newest first
func (s *Service) AuditTrail(ctx context.Context, postID string) ([]entity.AuditEntry, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.audit.ListByPost(ctx, postID)
}

// DuePosts retrieves unpublished posts whose scheduled date is "today"
// in the reference timezone. Used by the reminder scheduler.
func (s *Service) DuePosts(ctx context.Context) ([]entity.PlannedPost, error) {
	return s.posts.ListScheduledOn(ctx, s.today())
}
