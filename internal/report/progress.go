package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/timeagg"
)

// percent rounds part/total to the nearest integer; a zero total yields 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// Progress renders the "INFORME DE ACTUALIDAD" report: status counts over
// all tasks, then per project (in encounter order) the tasks with entries on
// date, their time ranges and a per-task subtotal.
func (g *Generator) Progress(tasks []domain.Task, date string) (string, error) {
	day, err := domain.ParseDay(date)
	if err != nil {
		return "", fmt.Errorf("report.Progress: %w", err)
	}

	var b strings.Builder
	g.header(&b, "                   INFORME DE ACTUALIDAD", day)

	var completed, inProgress, pending int
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskStatusCompleted:
			completed++
		case domain.TaskStatusInProgress:
			inProgress++
		case domain.TaskStatusPending:
			pending++
		}
	}
	total := len(tasks)

	b.WriteString("RESUMEN GENERAL\n")
	b.WriteString(lightRule)
	fmt.Fprintf(&b, "Total de tareas: %d\n", total)
	fmt.Fprintf(&b, "├─ Completadas: %d (%d%%)\n", completed, percent(completed, total))
	fmt.Fprintf(&b, "├─ En progreso: %d (%d%%)\n", inProgress, percent(inProgress, total))
	fmt.Fprintf(&b, "└─ Pendientes: %d (%d%%)\n\n", pending, percent(pending, total))

	var order []string
	groups := make(map[string][]*domain.Task)
	for i := range tasks {
		t := &tasks[i]
		if len(entriesOn(*t, date)) == 0 {
			continue
		}
		name := projectName(t, noProject)
		if _, ok := groups[name]; !ok {
			order = append(order, name)
		}
		groups[name] = append(groups[name], t)
	}

	for _, name := range order {
		fmt.Fprintf(&b, "PROYECTO: %s\n", strings.ToUpper(name))
		b.WriteString(heavyRule + "\n")

		for _, t := range groups[name] {
			fmt.Fprintf(&b, "▸ %s\n", t.Title)
			fmt.Fprintf(&b, "  Estado: %s\n", t.StatusLabel())
			if t.Description != nil && *t.Description != "" {
				fmt.Fprintf(&b, "  Descripción: %s\n", *t.Description)
			}
			b.WriteString("  Registros de tiempo:\n")

			entries := entriesOn(*t, date)
			for _, e := range entries {
				mins, _ := timeagg.Duration(e)
				fmt.Fprintf(&b, "  ├─ %s - %s (%s)\n", e.StartTime, e.EndTime, timeagg.FormatHM(mins))
			}
			fmt.Fprintf(&b, "  └─ Total: %s\n\n", timeagg.FormatHM(timeagg.TaskTotal(entries)))
		}
	}

	b.WriteString(heavyRule)
	return b.String(), nil
}
