package http

import (
	"errors"
	"net/http"

	cliententity "github.com/vadim/agency-planner/internal/domain/client/entity"
	planentity "github.com/vadim/agency-planner/internal/domain/plan/entity"
	postentity "github.com/vadim/agency-planner/internal/domain/post/entity"
	"github.com/vadim/agency-planner/internal/httpx/response"
)

// handleDomainError maps domain errors to HTTP responses. The two coded
// business-rule rejections keep their stable codes so UIs can render a
// specific message; validation problems map to 400, lookups to 404, and
// everything else collapses into a generic 500.
func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, postentity.ErrPastDate):
		response.ErrorCode(w, http.StatusBadRequest, response.CodeInvalidDate, err.Error())

	case errors.Is(err, postentity.ErrPostPublished):
		response.ErrorCode(w, http.StatusBadRequest, response.CodePostPublished, err.Error())

	case errors.Is(err, postentity.ErrMissingFields),
		errors.Is(err, postentity.ErrInvalidQuantity),
		errors.Is(err, postentity.ErrInvalidFormat),
		errors.Is(err, postentity.ErrInvalidStatus),
		errors.Is(err, postentity.ErrInvalidTransition),
		errors.Is(err, postentity.ErrPostNotDeletable),
		errors.Is(err, planentity.ErrEmptyClientID),
		errors.Is(err, planentity.ErrEmptyTitle),
		errors.Is(err, planentity.ErrInvalidMonth),
		errors.Is(err, cliententity.ErrEmptyName),
		errors.Is(err, cliententity.ErrEmptyClientID),
		errors.Is(err, cliententity.ErrEmptyObjectiveTitle):
		response.BadRequest(w, err.Error())

	case errors.Is(err, postentity.ErrPostNotFound),
		errors.Is(err, planentity.ErrPlanNotFound),
		errors.Is(err, cliententity.ErrClientNotFound),
		errors.Is(err, cliententity.ErrObjectiveNotFound):
		response.NotFound(w, err.Error())

	case errors.Is(err, postentity.ErrAssistUnavailable),
		errors.Is(err, cliententity.ErrAssistUnavailable):
		response.ErrorCode(w, http.StatusServiceUnavailable, response.CodeUpstream, err.Error())

	default:
		response.InternalError(w, "internal server error")
	}
}
