// Package pdf renders report documents to PDF with fpdf.
package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/wigac/wigac-backend/internal/report"
)

const (
	margin     = 50.0
	tableWidth = 495.0
	rowHeight  = 30.0
	headHeight = 25.0
)

var columns = []struct {
	title string
	width float64
	align string
}{
	{"Proyecto", 130, "L"},
	{"Tarea", 150, "L"},
	{"Horas", 70, "C"},
	{"Descripción", 145, "L"},
}

type rgb struct{ r, g, b int }

var (
	accent = rgb{0, 122, 255}
	muted  = rgb{134, 134, 139}
	stripe = rgb{245, 245, 247}
	border = rgb{232, 232, 237}
	white  = rgb{255, 255, 255}
	black  = rgb{0, 0, 0}
)

// Renderer renders work reports on A4 pages.
type Renderer struct{}

// New creates a Renderer.
func New() *Renderer { return &Renderer{} }

// WorkReport renders w as a PDF document.
func (r *Renderer) WorkReport(w report.WorkReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.writeWorkReport(&buf, w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) writeWorkReport(out io.Writer, w report.WorkReport) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.SetTitle(w.Title, true)
	doc.SetAuthor(w.Issuer, true)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.AddPage()

	textColor(doc, accent)
	doc.SetFont("Helvetica", "B", 24)
	doc.CellFormat(0, 30, tr(w.Title), "", 1, "C", false, 0, "")
	textColor(doc, muted)
	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 18, tr(w.Subtitle), "", 1, "C", false, 0, "")
	doc.Ln(24)

	textColor(doc, black)
	for _, line := range []string{
		"Empleado: " + w.Employee,
		"Fecha: " + w.Date,
		fmt.Sprintf("Total de horas: %.2fh", w.TotalHours),
	} {
		doc.CellFormat(0, 16, tr(line), "", 1, "L", false, 0, "")
	}
	doc.Ln(24)

	fillColor(doc, accent)
	drawColor(doc, accent)
	textColor(doc, white)
	doc.SetFont("Helvetica", "B", 11)
	for _, c := range columns {
		doc.CellFormat(c.width, headHeight, tr(c.title), "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	drawColor(doc, border)
	textColor(doc, black)
	for i, row := range w.Rows {
		if i%2 == 0 {
			fillColor(doc, white)
		} else {
			fillColor(doc, stripe)
		}
		cells := []string{row.Project, row.Task, fmt.Sprintf("%.2fh", row.Hours), row.Description}
		for j, c := range columns {
			text := fit(doc, tr(cells[j]), c.width-10)
			doc.CellFormat(c.width, rowHeight, text, "1", 0, c.align, true, 0, "")
		}
		doc.Ln(-1)
	}

	doc.Ln(20)
	fillColor(doc, stripe)
	textColor(doc, accent)
	doc.SetFont("Helvetica", "B", 16)
	doc.CellFormat(tableWidth, 40, tr(fmt.Sprintf("Total: %.2f horas  ", w.TotalHours)), "1", 1, "R", true, 0, "")

	doc.Ln(40)
	textColor(doc, muted)
	doc.SetFont("Helvetica", "", 9)
	footer := fmt.Sprintf("Generado automáticamente por %s el %s", w.Issuer, w.GeneratedAt)
	doc.CellFormat(0, 12, tr(footer), "", 1, "C", false, 0, "")

	if err := doc.Output(out); err != nil {
		return fmt.Errorf("pdf.WorkReport: %w", err)
	}
	return nil
}

// fit truncates s with an ellipsis so that it renders within width points.
func fit(doc *fpdf.Fpdf, s string, width float64) string {
	if doc.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && doc.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}

func textColor(doc *fpdf.Fpdf, c rgb) { doc.SetTextColor(c.r, c.g, c.b) }
func fillColor(doc *fpdf.Fpdf, c rgb) { doc.SetFillColor(c.r, c.g, c.b) }
func drawColor(doc *fpdf.Fpdf, c rgb) { doc.SetDrawColor(c.r, c.g, c.b) }
