package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/agency-planner/internal/domain/plan/entity"
	"github.com/vadim/agency-planner/internal/domain/plan/service"
	"github.com/vadim/agency-planner/internal/httpx/response"
)

// PlanPolicy defines the interface for plan operations
type PlanPolicy interface {
	CreatePlan(ctx context.Context, in service.CreateInput) (*entity.Plan, error)
	GetPlan(ctx context.Context, id string) (*entity.Plan, error)
	UpdatePlan(ctx context.Context, in service.UpdateInput) (*entity.Plan, error)
	DeletePlan(ctx context.Context, id string) error
	ListPlans(ctx context.Context, in service.ListInput) ([]entity.Plan, error)
}

// PlanHandler handles HTTP requests for plans
type PlanHandler struct {
	policy PlanPolicy
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(p PlanPolicy) *PlanHandler {
	return &PlanHandler{policy: p}
}

// RegisterRoutes registers plan routes
func (h *PlanHandler) RegisterRoutes(r chi.Router) {
	r.Route("/plans", func(r chi.Router) {
		r.Post("/", h.Create())
		r.Get("/", h.List())
		r.Get("/{id}", h.Get())
		r.Put("/{id}", h.Update())
		r.Delete("/{id}", h.Delete())
	})
}

// CreatePlanRequest represents the request body for creating a plan
type CreatePlanRequest struct {
	ClientID      string `json:"client_id"`
	Title         string `json:"title"`
	MonthOfRecord string `json:"month_of_record"` // YYYY-MM
}

// Create handles POST /plans
func (h *PlanHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		month, err := parseMonth(req.MonthOfRecord)
		if err != nil {
			response.BadRequest(w, "invalid month_of_record format, use YYYY-MM")
			return
		}

		plan, err := h.policy.CreatePlan(r.Context(), service.CreateInput{
			ClientID:      req.ClientID,
			Title:         req.Title,
			MonthOfRecord: month,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Created(w, plan)
	}
}

// Get handles GET /plans/{id}
func (h *PlanHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, err := h.policy.GetPlan(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleDomainError(w, err)
			return
		}
		response.OK(w, plan)
	}
}

// UpdatePlanRequest represents the request body for updating a plan
type UpdatePlanRequest struct {
	Title         *string `json:"title,omitempty"`
	MonthOfRecord *string `json:"month_of_record,omitempty"`
}

// Update handles PUT /plans/{id}
func (h *PlanHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		in := service.UpdateInput{
			ID:    chi.URLParam(r, "id"),
			Title: req.Title,
		}
		if req.MonthOfRecord != nil {
			month, err := parseMonth(*req.MonthOfRecord)
			if err != nil {
				response.BadRequest(w, "invalid month_of_record format, use YYYY-MM")
				return
			}
			in.MonthOfRecord = &month
		}

		plan, err := h.policy.UpdatePlan(r.Context(), in)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, plan)
	}
}

// Delete handles DELETE /plans/{id}. Deleting a plan removes its posts.
func (h *PlanHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.policy.DeletePlan(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleDomainError(w, err)
			return
		}
		response.NoContent(w)
	}
}

// List handles GET /plans
func (h *PlanHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		in := service.ListInput{ClientID: q.Get("client_id")}
		if y := q.Get("year"); y != "" {
			yi, err := strconv.Atoi(y)
			if err != nil {
				response.BadRequest(w, "invalid year")
				return
			}
			in.Year = &yi
		}
		if m := q.Get("month"); m != "" {
			mi, err := strconv.Atoi(m)
			if err != nil || mi < 1 || mi > 12 {
				response.BadRequest(w, "invalid month")
				return
			}
			in.Month = &mi
		}

		plans, err := h.policy.ListPlans(r.Context(), in)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, map[string]interface{}{"plans": plans})
	}
}

// parseMonth parses a YYYY-MM month reference
func parseMonth(s string) (time.Time, error) {
	return time.Parse("2006-01", s)
}
