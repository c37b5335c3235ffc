package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/agency-planner/internal/domain/post/entity"
	"github.com/vadim/agency-planner/internal/domain/post/service"
	"github.com/vadim/agency-planner/internal/httpx/response"
)

// PostPolicy defines the interface for planned post operations
// Interface is defined by consumer (handler), not provider (policy)
type PostPolicy interface {
	GenerateSchedule(ctx context.Context, in service.GenerateInput) (*service.GenerateOutput, error)
	Reschedule(ctx context.Context, in service.RescheduleInput) (*service.RescheduleOutput, error)
	GetPost(ctx context.Context, id string) (*entity.PlannedPost, error)
	ListPosts(ctx context.Context, in service.ListInput) (*service.ListOutput, error)
	DeletePost(ctx context.Context, id string) error
	TransitionStatus(ctx context.Context, id string, next entity.PostStatus) (*entity.PlannedPost, error)
	AuditTrail(ctx context.Context, postID string) ([]entity.AuditEntry, error)
	SuggestCaptions(ctx context.Context, postID string, count int) ([]string, error)
}

// PostHandler handles HTTP requests for planned posts
type PostHandler struct {
	policy PostPolicy
}

// NewPostHandler creates a new post handler
func NewPostHandler(p PostPolicy) *PostHandler {
	return &PostHandler{policy: p}
}

// RegisterRoutes registers post routes
func (h *PostHandler) RegisterRoutes(r chi.Router) {
	r.Route("/posts", func(r chi.Router) {
		r.Post("/generate", h.Generate())
		r.Post("/reschedule", h.Reschedule())
		r.Get("/", h.List())
		r.Get("/{id}", h.Get())
		r.Delete("/{id}", h.Delete())
		r.Post("/{id}/status", h.Transition())
		r.Get("/{id}/audit", h.Audit())
		r.Post("/{id}/captions", h.Captions())
	})
}

// StrategicPlanRequest mirrors the strategic plan payload of the
// generation contract (field names are part of the wire contract)
type StrategicPlanRequest struct {
	Missao  string   `json:"missao,omitempty"`
	Visao   string   `json:"visao,omitempty"`
	Valores []string `json:"valores,omitempty"`
}

// GenerateRequest represents the request body for schedule generation
type GenerateRequest struct {
	PlanejamentoID   string                `json:"planejamentoId"`
	QuantidadePosts  int                   `json:"quantidadePosts"`
	PlanoEstrategico *StrategicPlanRequest `json:"planoEstrategico,omitempty"`
	ClienteID        string                `json:"clienteId,omitempty"`
	ProjetoID        string                `json:"projetoId,omitempty"`
	ReplaceDrafts    bool                  `json:"replaceDrafts,omitempty"`
}

// GenerateResponse represents the response from schedule generation
type GenerateResponse struct {
	Success    bool                 `json:"success"`
	Posts      []entity.PlannedPost `json:"posts"`
	Quantidade int                  `json:"quantidade"`
}

// Generate handles POST /posts/generate
func (h *PostHandler) Generate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		if req.PlanejamentoID == "" {
			response.BadRequest(w, "planejamentoId is required")
			return
		}

		in := service.GenerateInput{
			PlanID:        req.PlanejamentoID,
			Quantity:      req.QuantidadePosts,
			ClientID:      req.ClienteID,
			ProjectID:     req.ProjetoID,
			ReplaceDrafts: req.ReplaceDrafts,
		}
		if req.PlanoEstrategico != nil {
			in.Strategic = &service.StrategicPlan{
				Mission: req.PlanoEstrategico.Missao,
				Vision:  req.PlanoEstrategico.Visao,
				Values:  req.PlanoEstrategico.Valores,
			}
		}

		out, err := h.policy.GenerateSchedule(r.Context(), in)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, GenerateResponse{
			Success:    true,
			Posts:      out.Posts,
			Quantidade: out.Count,
		})
	}
}

// RescheduleRequest represents the request body for rescheduling a post.
// oldDate is advisory and ignored for logic.
type RescheduleRequest struct {
	PostID  string `json:"postId"`
	NewDate string `json:"newDate"`
	OldDate string `json:"oldDate,omitempty"`
	UserID  string `json:"userId"`
}

// ConflictPost identifies one colliding post in a reschedule response
type ConflictPost struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Conflicts is the structured conflict payload of a reschedule response
type Conflicts struct {
	Count int            `json:"count"`
	Posts []ConflictPost `json:"posts"`
}

// RescheduleResponse represents the response from a successful reschedule
type RescheduleResponse struct {
	Success   bool                `json:"success"`
	Post      *entity.PlannedPost `json:"post"`
	Conflicts *Conflicts          `json:"conflicts"`
	Message   string              `json:"message"`
}

// Reschedule handles POST /posts/reschedule
func (h *PostHandler) Reschedule() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RescheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		var newDate time.Time
		if req.NewDate != "" {
			d, err := parseDate(req.NewDate)
			if err != nil {
				response.BadRequest(w, "invalid newDate format, use YYYY-MM-DD")
				return
			}
			newDate = d
		}

		out, err := h.policy.Reschedule(r.Context(), service.RescheduleInput{
			PostID:  req.PostID,
			NewDate: newDate,
			ActorID: req.UserID,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		var conflicts *Conflicts
		if len(out.Conflicts) > 0 {
			conflicts = &Conflicts{Count: len(out.Conflicts)}
			for _, c := range out.Conflicts {
				conflicts.Posts = append(conflicts.Posts, ConflictPost{ID: c.ID, Title: c.Title})
			}
		}

		message := "Post rescheduled"
		if conflicts != nil {
			message = "Post rescheduled with date conflicts"
		}

		response.OK(w, RescheduleResponse{
			Success:   true,
			Post:      out.Post,
			Conflicts: conflicts,
			Message:   message,
		})
	}
}

// Get handles GET /posts/{id}
func (h *PostHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		post, err := h.policy.GetPost(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, post)
	}
}

// ListResponse represents the response for listing posts
type ListResponse struct {
	Posts  []entity.PlannedPost `json:"posts"`
	Total  int64                `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

// List handles GET /posts
func (h *PostHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var status *entity.PostStatus
		if s := q.Get("status"); s != "" {
			ps, err := parsePostStatus(s)
			if err != nil {
				response.BadRequest(w, err.Error())
				return
			}
			status = &ps
		}

		var year, month *int
		if y := q.Get("year"); y != "" {
			yi, err := strconv.Atoi(y)
			if err != nil {
				response.BadRequest(w, "invalid year")
				return
			}
			year = &yi
		}
		if m := q.Get("month"); m != "" {
			mi, err := strconv.Atoi(m)
			if err != nil || mi < 1 || mi > 12 {
				response.BadRequest(w, "invalid month")
				return
			}
			month = &mi
		}

		limit := 50
		offset := 0
		if l := q.Get("limit"); l != "" {
			li, err := strconv.Atoi(l)
			if err != nil || li < 1 {
				response.BadRequest(w, "invalid limit")
				return
			}
			if li > 100 {
				li = 100
			}
			limit = li
		}
		if o := q.Get("offset"); o != "" {
			oi, err := strconv.Atoi(o)
			if err != nil || oi < 0 {
				response.BadRequest(w, "invalid offset")
				return
			}
			offset = oi
		}

		out, err := h.policy.ListPosts(r.Context(), service.ListInput{
			PlanID:   q.Get("plan_id"),
			ClientID: q.Get("client_id"),
			Status:   status,
			Year:     year,
			Month:    month,
			Limit:    limit,
			Offset:   offset,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, ListResponse{
			Posts:  out.Posts,
			Total:  out.Total,
			Limit:  limit,
			Offset: offset,
		})
	}
}

// Delete handles DELETE /posts/{id}
func (h *PostHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := h.policy.DeletePost(r.Context(), id); err != nil {
			handleDomainError(w, err)
			return
		}

		response.NoContent(w)
	}
}

// TransitionRequest represents the request body for a status transition
type TransitionRequest struct {
	Status string `json:"status"`
}

// Transition handles POST /posts/{id}/status
func (h *PostHandler) Transition() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req TransitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		status, err := parsePostStatus(req.Status)
		if err != nil {
			response.BadRequest(w, err.Error())
			return
		}

		post, err := h.policy.TransitionStatus(r.Context(), id, status)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, post)
	}
}

// Audit handles GET /posts/{id}/audit
func (h *PostHandler) Audit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		entries, err := h.policy.AuditTrail(r.Context(), id)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, map[string]interface{}{"entries": entries})
	}
}

// CaptionsRequest represents the request body for caption suggestions
type CaptionsRequest struct {
	Count int `json:"count,omitempty"`
}

// Captions handles POST /posts/{id}/captions
func (h *PostHandler) Captions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req CaptionsRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				response.BadRequest(w, "invalid JSON")
				return
			}
		}

		captions, err := h.policy.SuggestCaptions(r.Context(), id, req.Count)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, map[string]interface{}{"captions": captions})
	}
}

// Helper functions

// parseDate accepts a plain calendar date or a full RFC3339 timestamp
func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parsePostStatus(s string) (entity.PostStatus, error) {
	switch s {
	case "draft":
		return entity.PostStatusDraft, nil
	case "in_production":
		return entity.PostStatusInProduction, nil
	case "ready":
		return entity.PostStatusReady, nil
	case "published":
		return entity.PostStatusPublished, nil
	default:
		return "", entity.ErrInvalidStatus
	}
}
