package rest

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/service/task"
)

type taskService interface {
	List(ctx context.Context, f domain.TaskFilter) ([]domain.Task, error)
	Range(ctx context.Context, from, to string) ([]domain.Task, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	Create(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	Update(ctx context.Context, id uuid.UUID, input task.UpdateInput) (*domain.Task, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, input task.StatusInput) (*domain.Task, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// TaskHandler serves /tasks endpoints.
type TaskHandler struct {
	svc taskService
	rs  *Responder
}

// NewTaskHandler creates a TaskHandler.
func NewTaskHandler(svc taskService, rs *Responder) *TaskHandler {
	return &TaskHandler{svc: svc, rs: rs}
}

// taskRequest is shared by create and update. Status accepts the legacy
// TRANSVERSAL value, which the service maps onto the transversal flag.
type taskRequest struct {
	Title          *string    `json:"title" validate:"omitempty,max=255"`
	Description    *string    `json:"description"`
	Status         *string    `json:"status" validate:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED TRANSVERSAL"`
	IsTransversal  *bool      `json:"isTransversal"`
	Priority       *string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Department     *string    `json:"department" validate:"omitempty,max=100"`
	StartDate      *string    `json:"startDate"`
	DueDate        *string    `json:"dueDate"`
	ProjectID      *uuid.UUID `json:"projectId"`
	AssignedUserID *uuid.UUID `json:"assignedUserId"`
	MapPositionX   *float64   `json:"mapPositionX"`
	MapPositionY   *float64   `json:"mapPositionY"`
}

type statusRequest struct {
	Status        string `json:"status" validate:"required,oneof=PENDING IN_PROGRESS COMPLETED TRANSVERSAL"`
	IsTransversal *bool  `json:"isTransversal"`
}

type positionRequest struct {
	X *float64 `json:"x" validate:"required"`
	Y *float64 `json:"y" validate:"required"`
}

// List handles GET /tasks?projectId&status&priority&assignedUserId.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	f, err := taskFilter(r)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	tasks, err := h.svc.List(r.Context(), f)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(tasks, toTaskResponse))
}

// Range handles GET /tasks/range?start&end.
func (h *TaskHandler) Range(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	tasks, err := h.svc.Range(r.Context(), q.Get("start"), q.Get("end"))
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(tasks, toTaskResponse))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	t, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	due, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	input := task.CreateInput{
		Description:    req.Description,
		IsTransversal:  req.IsTransversal,
		Department:     req.Department,
		StartDate:      start,
		DueDate:        due,
		ProjectID:      req.ProjectID,
		AssignedUserID: req.AssignedUserID,
		MapPositionX:   req.MapPositionX,
		MapPositionY:   req.MapPositionY,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Status != nil {
		input.Status = *req.Status
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}

	t, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(t))
}

// Update handles PUT /tasks/{id}. Omitted fields are left unchanged.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	var req taskRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	due, err := parseDate("dueDate", req.DueDate)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	t, err := h.svc.Update(r.Context(), id, task.UpdateInput{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		IsTransversal:  req.IsTransversal,
		Priority:       req.Priority,
		Department:     req.Department,
		StartDate:      start,
		DueDate:        due,
		ProjectID:      req.ProjectID,
		AssignedUserID: req.AssignedUserID,
		MapPositionX:   req.MapPositionX,
		MapPositionY:   req.MapPositionY,
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// UpdateStatus handles PATCH /tasks/{id}/status.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	var req statusRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}

	t, err := h.svc.UpdateStatus(r.Context(), id, task.StatusInput{
		Status:        req.Status,
		IsTransversal: req.IsTransversal,
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// UpdatePosition handles PATCH /tasks/{id}/position.
func (h *TaskHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	var req positionRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}

	t, err := h.svc.UpdatePosition(r.Context(), id, *req.X, *req.Y)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(t))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

func taskFilter(r *http.Request) (domain.TaskFilter, error) {
	var (
		f   domain.TaskFilter
		err error
	)
	q := r.URL.Query()

	if f.ProjectID, err = queryID(r, "projectId"); err != nil {
		return f, err
	}
	if f.AssignedUserID, err = queryID(r, "assignedUserId"); err != nil {
		return f, err
	}
	if raw := q.Get("status"); raw != "" {
		s := domain.TaskStatus(raw)
		if !s.IsValid() {
			return f, domain.NewValidationError("status", "must be PENDING, IN_PROGRESS or COMPLETED")
		}
		f.Status = &s
	}
	if raw := q.Get("priority"); raw != "" {
		p := domain.TaskPriority(raw)
		if !p.IsValid() {
			return f, domain.NewValidationError("priority", "must be LOW, MEDIUM, HIGH or CRITICAL")
		}
		f.Priority = &p
	}
	return f, nil
}
