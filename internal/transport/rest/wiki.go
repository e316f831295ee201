package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/service/wiki"
)

type wikiService interface {
	List(ctx context.Context, projectID *uuid.UUID) ([]domain.WikiPage, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.WikiPage, error)
	GetBySlug(ctx context.Context, slug string) (*domain.WikiPage, error)
	Create(ctx context.Context, input wiki.Input) (*domain.WikiPage, error)
	Update(ctx context.Context, id uuid.UUID, input wiki.Input) (*domain.WikiPage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WikiHandler serves /wiki endpoints.
type WikiHandler struct {
	svc wikiService
	rs  *Responder
}

// NewWikiHandler creates a WikiHandler.
func NewWikiHandler(svc wikiService, rs *Responder) *WikiHandler {
	return &WikiHandler{svc: svc, rs: rs}
}

type wikiRequest struct {
	Title     string     `json:"title" validate:"required,max=255"`
	Content   string     `json:"content"`
	ProjectID *uuid.UUID `json:"projectId"`
	TaskID    *uuid.UUID `json:"taskId"`
}

func (req wikiRequest) input() wiki.Input {
	return wiki.Input{
		Title:     req.Title,
		Content:   req.Content,
		ProjectID: req.ProjectID,
		TaskID:    req.TaskID,
	}
}

// List handles GET /wiki?projectId.
func (h *WikiHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := queryID(r, "projectId")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	pages, err := h.svc.List(r.Context(), projectID)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(pages, toWikiResponse))
}

// Get handles GET /wiki/{id}.
func (h *WikiHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toWikiResponse(p))
}

// GetBySlug handles GET /wiki/slug/{slug}.
func (h *WikiHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWikiResponse(p))
}

// Create handles POST /wiki.
func (h *WikiHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req wikiRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	p, err := h.svc.Create(r.Context(), req.input())
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWikiResponse(p))
}

// Update handles PUT /wiki/{id}.
func (h *WikiHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	var req wikiRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	p, err := h.svc.Update(r.Context(), id, req.input())
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWikiResponse(p))
}

// Delete handles DELETE /wiki/{id}.
func (h *WikiHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
