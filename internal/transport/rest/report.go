package rest

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/report"
	"github.com/wigac/wigac-backend/internal/service/reports"
	"github.com/wigac/wigac-backend/internal/timeagg"
)

type reportService interface {
	DailyText(ctx context.Context, date string) (string, error)
	ProgressText(ctx context.Context, date string) (string, error)
	Email(ctx context.Context, date string) (report.Email, error)
	Timesheet(ctx context.Context, date string) (timeagg.Summary, error)
	DailyPDF(ctx context.Context, date string, userID *uuid.UUID) (*reports.WorkReportPDF, error)
	SendDaily(ctx context.Context, date string, userID *uuid.UUID, email string) error
}

// ReportHandler serves /reports and /timesheet.
type ReportHandler struct {
	svc reportService
	rs  *Responder
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, rs *Responder) *ReportHandler {
	return &ReportHandler{svc: svc, rs: rs}
}

type textResponse struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

type emailResponse struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type sendResponse struct {
	Message string `json:"message"`
}

// DailyPDF handles GET /reports/daily?date&userId.
func (h *ReportHandler) DailyPDF(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	pdf, err := h.svc.DailyPDF(r.Context(), r.URL.Query().Get("date"), userID)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+pdf.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdf.Data) //nolint:errcheck
}

// SendDaily handles POST /reports/daily/send?date&userId&email.
func (h *ReportHandler) SendDaily(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	q := r.URL.Query()
	if err := h.svc.SendDaily(r.Context(), q.Get("date"), userID, q.Get("email")); err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sendResponse{Message: "report sent"})
}

// DailyText handles GET /reports/daily/text?date.
func (h *ReportHandler) DailyText(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	text, err := h.svc.DailyText(r.Context(), date)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Date: date, Text: text})
}

// Progress handles GET /reports/progress?date.
func (h *ReportHandler) Progress(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	text, err := h.svc.ProgressText(r.Context(), date)
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, textResponse{Date: date, Text: text})
}

// Email handles GET /reports/email?date.
func (h *ReportHandler) Email(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.Email(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, emailResponse{To: e.To, Subject: e.Subject, Body: e.Body})
}

// Timesheet handles GET /timesheet?date.
func (h *ReportHandler) Timesheet(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Timesheet(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		h.rs.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTimesheetResponse(sum))
}
