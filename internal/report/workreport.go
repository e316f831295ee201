package report

import (
	"fmt"
	"time"

	"github.com/wigac/wigac-backend/internal/domain"
)

// WorkRow is one line of the daily work report.
type WorkRow struct {
	Project     string
	Task        string
	Hours       float64
	Description string
}

// WorkReport is the document model of the "Parte de Trabajo Diario" built
// from a user's activities on one day.
type WorkReport struct {
	Title       string
	Subtitle    string
	Employee    string
	Date        string // dd/MM/yyyy
	Rows        []WorkRow
	TotalHours  float64
	GeneratedAt string // dd/MM/yyyy HH:mm
	Issuer      string
}

// WorkReportFilename returns the attachment name for a report on day.
func WorkReportFilename(day string) string {
	return "parte-trabajo-" + day + ".pdf"
}

// WorkReport builds the daily work report for user from activities on date.
// Activities on other dates are ignored.
func (g *Generator) WorkReport(user domain.User, date string, activities []domain.Activity) (WorkReport, error) {
	formatted, err := ShortDate(date)
	if err != nil {
		return WorkReport{}, fmt.Errorf("report.WorkReport: %w", err)
	}

	wr := WorkReport{
		Title:       "Parte de Trabajo Diario",
		Subtitle:    "Wigac - Gestión de Proyectos",
		Employee:    user.Name,
		Date:        formatted,
		GeneratedAt: g.generatedAt(),
		Issuer:      "Wigac",
	}
	for _, a := range activities {
		if a.Date != date {
			continue
		}
		row := WorkRow{Project: "-", Task: "-", Hours: a.Hours}
		if a.Task != nil {
			row.Task = a.Task.Title
			if name := a.Task.ProjectName(); name != "" {
				row.Project = name
			}
		}
		if a.Description != nil {
			row.Description = *a.Description
		}
		wr.Rows = append(wr.Rows, row)
		wr.TotalHours += a.Hours
	}
	return wr, nil
}

// EmailSubject is the subject line of the e-mail carrying the report.
func (w WorkReport) EmailSubject() string {
	return "Parte de Trabajo - " + w.Date
}

// EmailText is the plain-text body accompanying the attachment.
func (w WorkReport) EmailText() string {
	return "Adjunto parte de trabajo del día " + w.Date
}

// Now returns the generator's clock in its location.
func (g *Generator) Now() time.Time { return g.now().In(g.loc) }
