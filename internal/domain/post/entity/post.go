package entity

import (
	"time"
)

// PostFormat represents the content format of a planned post
type PostFormat string

const (
	PostFormatPost     PostFormat = "post"
	PostFormatCarousel PostFormat = "carousel"
	PostFormatReel     PostFormat = "reel"
	PostFormatStory    PostFormat = "story"
)

// GeneratedFormats is the rotation order used by the schedule generator.
// The i-th generated post gets GeneratedFormats[i % len(GeneratedFormats)].
var GeneratedFormats = []PostFormat{
	PostFormatPost,
	PostFormatCarousel,
	PostFormatReel,
	PostFormatStory,
}

// PostStatus represents the workflow state of a planned post
type PostStatus string

const (
	PostStatusDraft        PostStatus = "draft"
	PostStatusInProduction PostStatus = "in_production"
	PostStatusReady        PostStatus = "ready"
	PostStatusPublished    PostStatus = "published"
)

// statusOrder defines the linear workflow draft -> in_production -> ready -> published
var statusOrder = map[PostStatus]int{
	PostStatusDraft:        0,
	PostStatusInProduction: 1,
	PostStatusReady:        2,
	PostStatusPublished:    3,
}

// DefaultContentType is the categorical tag stamped on generated posts.
const DefaultContentType = "inform"

// StrategicContext records the provenance of a generated post.
// It is written once at generation time and never mutated afterwards.
type StrategicContext struct {
	ObjectiveID string    `json:"objective_id,omitempty"`
	BrandValue  string    `json:"brand_value,omitempty"`
	Mission     string    `json:"mission,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PlannedPost represents one scheduled piece of content within a plan
type PlannedPost struct {
	ID             string            `json:"id"`
	PlanID         string            `json:"plan_id"`
	ClientID       string            `json:"client_id"`
	ProjectID      string            `json:"project_id,omitempty"`
	ObjectiveID    string            `json:"objective_id,omitempty"`
	Title          string            `json:"title"`
	Format         PostFormat        `json:"format"`
	ContentType    string            `json:"content_type"`
	StructuredText string            `json:"structured_text"`
	ScheduledDate  time.Time         `json:"scheduled_date"`
	Status         PostStatus        `json:"status"`
	Strategic      *StrategicContext `json:"strategic_context,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// IsPublished returns true once the post has reached its terminal state
func (p *PlannedPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// CanReschedule returns true if the scheduled date may still be changed.
// Published posts are immutable with respect to scheduling.
func (p *PlannedPost) CanReschedule() bool {
	return p.Status != PostStatusPublished
}

// IsDeletable returns true if the post can be removed (drafts only)
func (p *PlannedPost) IsDeletable() bool {
	return p.Status == PostStatusDraft
}

// CanTransitionTo reports whether the post may move to the given status.
// The workflow is strictly forward, one step at a time.
func (p *PlannedPost) CanTransitionTo(next PostStatus) bool {
	cur, ok := statusOrder[p.Status]
	if !ok {
		return false
	}
	nxt, ok := statusOrder[next]
	if !ok {
		return false
	}
	return nxt == cur+1
}

// AuditAction identifies the kind of change recorded in an audit entry
type AuditAction string

const (
	AuditActionReschedule AuditAction = "reschedule"
)

// AuditSnapshot captures the fields of a post relevant to an audit entry
type AuditSnapshot struct {
	ScheduledDate time.Time `json:"scheduled_date"`
	Title         string    `json:"title"`
}

// AuditEntry is an append-only record of a post mutation
type AuditEntry struct {
	ID        string        `json:"id"`
	PostID    string        `json:"post_id"`
	ActorID   string        `json:"actor_id"`
	Action    AuditAction   `json:"action"`
	Before    AuditSnapshot `json:"before"`
	After     AuditSnapshot `json:"after"`
	CreatedAt time.Time     `json:"created_at"`
}
