package policy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vadim/agency-planner/internal/domain/post/entity"
	"github.com/vadim/agency-planner/internal/domain/post/service"
)

// Notifier defines the interface for outbound notifications.
// Defined here (consumer), not in the upstream mail package (provider).
type Notifier interface {
	Send(ctx context.Context, in NotificationInput) error
}

// NotificationInput represents one notification to dispatch
type NotificationInput struct {
	To      []string
	Subject string
	Body    string
}

// CaptionGenerator defines the interface for AI caption suggestions
type CaptionGenerator interface {
	SuggestCaptions(ctx context.Context, in CaptionInput) ([]string, error)
}

// CaptionInput describes the post a caption is wanted for
type CaptionInput struct {
	Title   string
	Body    string
	Format  string
	Count   int
	Segment string
}

// Policy orchestrates planned post use-cases that reach outside the
// post domain: reminder digests and generative caption assistance.
// The embedded Service carries the core generate/reschedule operations.
type Policy struct {
	*service.Service

	notifier   Notifier
	captions   CaptionGenerator
	recipients []string
	logger     *slog.Logger
}

// New creates a new post policy
func New(svc *service.Service, notifier Notifier, captions CaptionGenerator, recipients []string, logger *slog.Logger) *Policy {
	return &Policy{
		Service:    svc,
		notifier:   notifier,
		captions:   captions,
		recipients: recipients,
		logger:     logger,
	}
}

// ProcessDueReminders sends a digest of posts scheduled for today that
// have not been published yet. Called by the reminder scheduler.
func (p *Policy) ProcessDueReminders(ctx context.Context) error {
	due, err := p.DuePosts(ctx)
	if err != nil {
		return fmt.Errorf("loading due posts: %w", err)
	}
	if len(due) == 0 || p.notifier == nil || len(p.recipients) == 0 {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d post(s) scheduled for today are not published yet:\n\n", len(due))
	for _, post := range due {
		fmt.Fprintf(&b, "- [%s] %s (%s)\n", post.Status, post.Title, post.Format)
	}

	err = p.notifier.Send(ctx, NotificationInput{
		To:      p.recipients,
		Subject: fmt.Sprintf("Content calendar: %d post(s) due today", len(due)),
		Body:    b.String(),
	})
	if err != nil {
		return fmt.Errorf("sending reminder digest: %w", err)
	}

	p.logger.Info("reminder digest sent", "due", len(due))
	return nil
}

// SuggestCaptions asks the generative provider for caption ideas for a post
func (p *Policy) SuggestCaptions(ctx context.Context, postID string, count int) ([]string, error) {
	if count <= 0 {
		count = 3
	}

	post, err := p.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if p.captions == nil {
		return nil, entity.ErrAssistUnavailable
	}

	return p.captions.SuggestCaptions(ctx, CaptionInput{
		Title:  post.Title,
		Body:   post.StructuredText,
		Format: string(post.Format),
		Count:  count,
	})
}
