package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/service/subtask"
)

type subtaskService interface {
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]domain.Subtask, error)
	ListMine(ctx context.Context) ([]domain.Subtask, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Subtask, error)
	Create(ctx context.Context, input subtask.CreateInput) (*domain.Subtask, error)
	Update(ctx context.Context, id uuid.UUID, input subtask.UpdateInput) (*domain.Subtask, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubtaskHandler serves /subtasks endpoints.
type SubtaskHandler struct {
	svc subtaskService
	rs  *Responder
}

// NewSubtaskHandler creates a SubtaskHandler.
func NewSubtaskHandler(svc subtaskService, rs *Responder) *SubtaskHandler {
	return &SubtaskHandler{svc: svc, rs: rs}
}

// Time values are checked by the service, which reports inverted ranges
// against endTime.
type subtaskRequest struct {
	TaskID      *uuid.UUID `json:"taskId"`
	Description *string    `json:"description" validate:"omitempty,max=2000"`
	WorkDate    *string    `json:"workDate"`
	StartTime   *string    `json:"startTime"`
	EndTime     *string    `json:"endTime"`
}

// List handles GET /subtasks?taskId. Without taskId it lists every entry of
// the caller with task and project embedded.
func (h *SubtaskHandler) List(w http.ResponseWriter, r *http.Request) {
	taskID, err := queryID(r, "taskId")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	if taskID == nil {
		entries, err := h.svc.ListMine(r.Context())
		if err != nil {
			h.rs.fail(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, mapSlice(entries, toSubtaskWithTask))
		return
	}

	entries, err := h.svc.ListByTask(r.Context(), *taskID)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(entries, toSubtaskResponse))
}

// Get handles GET /subtasks/{id}.
func (h *SubtaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	e, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubtaskResponse(e))
}

// Create handles POST /subtasks.
func (h *SubtaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req subtaskRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}

	input := subtask.CreateInput{
		Description: deref(req.Description),
		WorkDate:    deref(req.WorkDate),
		StartTime:   deref(req.StartTime),
		EndTime:     deref(req.EndTime),
	}
	if req.TaskID != nil {
		input.TaskID = *req.TaskID
	}

	e, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSubtaskResponse(e))
}

// Update handles PUT /subtasks/{id}. The duration is recomputed from the
// resulting start and end times.
func (h *SubtaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	var req subtaskRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}

	e, err := h.svc.Update(r.Context(), id, subtask.UpdateInput{
		Description: req.Description,
		WorkDate:    req.WorkDate,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubtaskResponse(e))
}

// Delete handles DELETE /subtasks/{id}.
func (h *SubtaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
