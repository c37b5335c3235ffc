package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vadim/agency-planner/internal/domain/client/entity"
	"github.com/vadim/agency-planner/internal/domain/client/service"
	"github.com/vadim/agency-planner/internal/httpx/response"
)

// ClientPolicy defines the interface for client and objective operations
type ClientPolicy interface {
	CreateClient(ctx context.Context, in service.CreateClientInput) (*entity.Client, error)
	GetClient(ctx context.Context, id string) (*entity.Client, error)
	UpdateClient(ctx context.Context, in service.UpdateClientInput) (*entity.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]entity.Client, error)
	CreateObjective(ctx context.Context, in service.CreateObjectiveInput) (*entity.Objective, error)
	ListObjectives(ctx context.Context, clientID string) ([]entity.Objective, error)
	UpdateObjective(ctx context.Context, in service.UpdateObjectiveInput) (*entity.Objective, error)
	DeleteObjective(ctx context.Context, id string) error
	GenerateSWOT(ctx context.Context, clientID, notes string) (*entity.SWOT, error)
}

// ClientHandler handles HTTP requests for clients and objectives
type ClientHandler struct {
	policy ClientPolicy
}

// NewClientHandler creates a new client handler
func NewClientHandler(p ClientPolicy) *ClientHandler {
	return &ClientHandler{policy: p}
}

// RegisterRoutes registers client and objective routes
func (h *ClientHandler) RegisterRoutes(r chi.Router) {
	r.Route("/clients", func(r chi.Router) {
		r.Post("/", h.Create())
		r.Get("/", h.List())
		r.Get("/{id}", h.Get())
		r.Put("/{id}", h.Update())
		r.Delete("/{id}", h.Delete())
		r.Post("/{id}/swot", h.SWOT())
		r.Post("/{id}/objectives", h.CreateObjective())
		r.Get("/{id}/objectives", h.ListObjectives())
	})
	r.Route("/objectives", func(r chi.Router) {
		r.Put("/{id}", h.UpdateObjective())
		r.Delete("/{id}", h.DeleteObjective())
	})
}

// ClientRequest represents the request body for creating a client
type ClientRequest struct {
	Name         string `json:"name"`
	Segment      string `json:"segment,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
}

// Create handles POST /clients
func (h *ClientHandler) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		c, err := h.policy.CreateClient(r.Context(), service.CreateClientInput{
			Name:         req.Name,
			Segment:      req.Segment,
			ContactEmail: req.ContactEmail,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Created(w, c)
	}
}

// Get handles GET /clients/{id}
func (h *ClientHandler) Get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := h.policy.GetClient(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleDomainError(w, err)
			return
		}
		response.OK(w, c)
	}
}

// UpdateClientRequest represents the request body for updating a client
type UpdateClientRequest struct {
	Name         *string `json:"name,omitempty"`
	Segment      *string `json:"segment,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty"`
}

// Update handles PUT /clients/{id}
func (h *ClientHandler) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		c, err := h.policy.UpdateClient(r.Context(), service.UpdateClientInput{
			ID:           chi.URLParam(r, "id"),
			Name:         req.Name,
			Segment:      req.Segment,
			ContactEmail: req.ContactEmail,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, c)
	}
}

// Delete handles DELETE /clients/{id}
func (h *ClientHandler) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.policy.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleDomainError(w, err)
			return
		}
		response.NoContent(w)
	}
}

// List handles GET /clients
func (h *ClientHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := h.policy.ListClients(r.Context())
		if err != nil {
			handleDomainError(w, err)
			return
		}
		response.OK(w, map[string]interface{}{"clients": clients})
	}
}

// SWOTRequest represents the request body for a SWOT analysis
type SWOTRequest struct {
	Notes string `json:"notes,omitempty"`
}

// SWOT handles POST /clients/{id}/swot
func (h *ClientHandler) SWOT() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SWOTRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				response.BadRequest(w, "invalid JSON")
				return
			}
		}

		swot, err := h.policy.GenerateSWOT(r.Context(), chi.URLParam(r, "id"), req.Notes)
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, swot)
	}
}

// ObjectiveRequest represents the request body for creating an objective
type ObjectiveRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CreateObjective handles POST /clients/{id}/objectives
func (h *ClientHandler) CreateObjective() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ObjectiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		o, err := h.policy.CreateObjective(r.Context(), service.CreateObjectiveInput{
			ClientID:    chi.URLParam(r, "id"),
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.Created(w, o)
	}
}

// ListObjectives handles GET /clients/{id}/objectives
func (h *ClientHandler) ListObjectives() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objectives, err := h.policy.ListObjectives(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			handleDomainError(w, err)
			return
		}
		response.OK(w, map[string]interface{}{"objectives": objectives})
	}
}

// UpdateObjectiveRequest represents the request body for updating an objective
type UpdateObjectiveRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateObjective handles PUT /objectives/{id}
func (h *ClientHandler) UpdateObjective() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateObjectiveRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "invalid JSON")
			return
		}

		o, err := h.policy.UpdateObjective(r.Context(), service.UpdateObjectiveInput{
			ID:          chi.URLParam(r, "id"),
			Title:       req.Title,
			Description: req.Description,
		})
		if err != nil {
			handleDomainError(w, err)
			return
		}

		response.OK(w, o)
	}
}

// DeleteObjective handles DELETE /objectives/{id}
func (h *ClientHandler) DeleteObjective() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.policy.DeleteObjective(r.Context(), chi.URLParam(r, "id")); err != nil {
			handleDomainError(w, err)
			return
		}
		response.NoContent(w)
	}
}
