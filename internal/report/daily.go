package report

import (
	"fmt"
	"strings"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/timeagg"
)

// Daily renders the "REPORTE DE TAREAS" report for date. Entries appear in
// encounter order: tasks as given, entries in stored order. Numbering is
// global across tasks and starts at 1.
func (g *Generator) Daily(tasks []domain.Task, date string) (string, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return "", fmt.Errorf("report.Daily: %w", err)
	}

	var b strings.Builder
	g.header(&b, "                      REPORTE DE TAREAS", day)

	total, n := 0, 1
	for i := range tasks {
		t := &tasks[i]
		for _, e := range entriesOn(*t, date) {
			fmt.Fprintf(&b, "%d. %s - %s\n", n,
				strings.ToUpper(projectName(t, noProject)), strings.ToUpper(t.Title))
			b.WriteString(lightRule)
			if e.Description != "" {
				fmt.Fprintf(&b, "   Descripción: %s\n", e.Description)
			}
			mins, _ := timeagg.Duration(e)
			fmt.Fprintf(&b, "   Estado: %s\n", t.StatusLabel())
			fmt.Fprintf(&b, "   Horario: %s - %s\n", e.StartTime, e.EndTime)
			fmt.Fprintf(&b, "   Duración: %s\n\n", timeagg.FormatHM(mins))
			total += mins
			n++
		}
	}

	b.WriteString(heavyRule)
	fmt.Fprintf(&b, "TOTAL DEL DÍA: %s\n", timeagg.FormatHM(total))
	b.WriteString(heavyRule)
	return b.String(), nil
}
