package rest

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wigac/wigac-backend/internal/domain"
)

type quickNoteService interface {
	Get(ctx context.Context) (*domain.QuickNote, error)
	Save(ctx context.Context, content string) (*domain.QuickNote, error)
}

type regacService interface {
	Get(ctx context.Context, date string) (bool, error)
	Batch(ctx context.Context, dates []string) (map[string]bool, error)
	Set(ctx context.Context, date string, registered bool) (domain.RegacLog, error)
}

// NotesHandler serves the personal scratchpad and attendance log.
type NotesHandler struct {
	notes quickNoteService
	regac regacService
	rs    *Responder
}

// NewNotesHandler creates a NotesHandler.
func NewNotesHandler(notes quickNoteService, regac regacService, rs *Responder) *NotesHandler {
	return &NotesHandler{notes: notes, regac: regac, rs: rs}
}

type quickNoteRequest struct {
	Content *string `json:"content" validate:"required"`
}

type regacBatchRequest struct {
	Dates []string `json:"dates" validate:"required,max=366"`
}

type regacRequest struct {
	Registered *bool `json:"registered" validate:"required"`
}

// GetQuickNote handles GET /quicknotes.
func (h *NotesHandler) GetQuickNote(w http.ResponseWriter, r *http.Request) {
	n, err := h.notes.Get(r.Context())
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quickNoteResponse{Content: n.Content, UpdatedAt: n.UpdatedAt})
}

// SaveQuickNote handles PUT /quicknotes.
func (h *NotesHandler) SaveQuickNote(w http.ResponseWriter, r *http.Request) {
	var req quickNoteRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	n, err := h.notes.Save(r.Context(), *req.Content)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quickNoteResponse{Content: n.Content, UpdatedAt: n.UpdatedAt})
}

// GetRegac handles GET /regac/{date}.
func (h *NotesHandler) GetRegac(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	registered, err := h.regac.Get(r.Context(), date)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, regacResponse{Date: date, Registered: registered})
}

// BatchRegac handles POST /regac/batch. Every requested date appears in the
// response map.
func (h *NotesHandler) BatchRegac(w http.ResponseWriter, r *http.Request) {
	var req regacBatchRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	states, err := h.regac.Batch(r.Context(), req.Dates)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, states)
}

// SetRegac handles PUT /regac/{date}.
func (h *NotesHandler) SetRegac(w http.ResponseWriter, r *http.Request) {
	var req regacRequest
	if err := decode(w, r, &req); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	entry, err := h.regac.Set(r.Context(), chi.URLParam(r, "date"), *req.Registered)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, regacResponse{Date: entry.WorkDate, Registered: entry.Registered})
}
