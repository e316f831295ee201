package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/service/project"
)

type projectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	Create(ctx context.Context, input project.CreateInput) (*domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, input project.UpdateInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProjectHandler serves /projects endpoints.
type ProjectHandler struct {
	svc projectService
	rs  *Responder
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(svc projectService, rs *Responder) *ProjectHandler {
	return &ProjectHandler{svc: svc, rs: rs}
}

type projectRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=ACTIVE ON_HOLD COMPLETED"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
}

func (req projectRequest) dates() (start, end *time.Time, err error) {
	if start, err = parseDate("startDate", req.StartDate); err != nil {
		return nil, nil, err
	}
	if end, err = parseDate("endDate", req.EndDate); err != nil {
		return nil, nil, err
	}
	return start, end, nil
}

func (req projectRequest) status() *domain.ProjectStatus {
	if req.Status == nil {
		return nil
	}
	s := domain.ProjectStatus(*req.Status)
	return &s
}

// List handles GET /projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.List(r.Context())
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(projects, toProjectResponse))
}

// Get handles GET /projects/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	p, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	start, end, err := req.dates()
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	input := project.CreateInput{
		Description: req.Description,
		Status:      req.status(),
		Color:       req.Color,
		StartDate:   start,
		EndDate:     end,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}

	p, err := h.svc.Create(r.Context(), input)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProjectResponse(p))
}

// Update handles PUT /projects/{id}. Omitted fields are left unchanged.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	var req projectRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	start, end, err := req.dates()
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	p, err := h.svc.Update(r.Context(), id, project.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.status(),
		Color:       req.Color,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// Delete handles DELETE /projects/{id}.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
