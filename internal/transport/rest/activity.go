package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/service/activity"
)

type activityService interface {
	List(ctx context.Context, f domain.ActivityFilter) ([]domain.Activity, error)
	Create(ctx context.Context, input activity.CreateInput) (*domain.Activity, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ActivityHandler serves /activities endpoints.
type ActivityHandler struct {
	svc activityService
	rs  *Responder
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(svc activityService, rs *Responder) *ActivityHandler {
	return &ActivityHandler{svc: svc, rs: rs}
}

type activityRequest struct {
	TaskID      uuid.UUID `json:"taskId" validate:"required"`
	Date        string    `json:"date" validate:"required"`
	Hours       float64   `json:"hours" validate:"gt=0,lte=24"`
	Description *string   `json:"description" validate:"omitempty,max=2000"`
}

// List handles GET /activities?date or ?startDate&endDate.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.svc.List(r.Context(), domain.ActivityFilter{
		Date: q.Get("date"),
		From: q.Get("startDate"),
		To:   q.Get("endDate"),
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toActivityResponse))
}

// Create handles POST /activities.
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}

	a, err := h.svc.Create(r.Context(), activity.CreateInput{
		TaskID:      req.TaskID,
		Date:        req.Date,
		Hours:       req.Hours,
		Description: req.Description,
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(a))
}

// Delete handles DELETE /activities/{id}.
func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
