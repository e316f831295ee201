package report

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wigac/wigac-backend/internal/domain"
	"github.com/wigac/wigac-backend/internal/timeagg"
)

// EmailRecipients is the fixed recipient list of the daily work e-mail.
const EmailRecipients = "Antonio Carro Mariño | Sdweb <antonio.carro@sdweb.es>, " +
	"Brais Martinez | Sdweb <brais.martinez@sdweb.es>"

// Email is a rendered daily work e-mail.
type Email struct {
	To      string
	Subject string
	Body    string
}

// TitleCase capitalises the first letter of every space-separated word and
// lower-cases the rest.
func TitleCase(name string) string {
	parts := strings.Split(name, " ")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(strings.ToLower(p))
		parts[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(parts, " ")
}

// EmailReport builds the daily work e-mail for userName on date. Entries on
// date are ordered by start time and grouped by task in order of first
// appearance.
func EmailReport(date, userName string, tasks []domain.Task) (Email, error) {
	formatted, err := ShortDate(date)
	if err != nil {
		return Email{}, fmt.Errorf("report.EmailReport: %w", err)
	}
	if userName == "" {
		userName = "Usuario"
	}

	byID := make(map[uuid.UUID]*domain.Task, len(tasks))
	var entries []domain.Subtask
	for i := range tasks {
		byID[tasks[i].ID] = &tasks[i]
		entries = append(entries, entriesOn(tasks[i], date)...)
	}
	day := timeagg.GroupByDate(entries)[date]

	var order []uuid.UUID
	groups := make(map[uuid.UUID][]domain.Subtask)
	for _, e := range day {
		if _, ok := groups[e.TaskID]; !ok {
			order = append(order, e.TaskID)
		}
		groups[e.TaskID] = append(groups[e.TaskID], e)
	}

	var b strings.Builder
	b.WriteString("Hola,\n\n")
	b.WriteString("1.- ¿Qué he hecho hoy, y resultado (en desarrollo o finalizado)?\n\n")

	for _, id := range order {
		t, ok := byID[id]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "    - %s - %s\n",
			strings.ToUpper(projectName(t, "SIN PROYECTO")), strings.ToUpper(t.Title))

		var descs []string
		for _, e := range groups[id] {
			if e.Description != "" {
				descs = append(descs, e.Description)
			}
		}
		if len(descs) > 0 {
			fmt.Fprintf(&b, "    %s\n", strings.Join(descs, " "))
		}

		result := "En desarrollo"
		if t.Status == domain.TaskStatusCompleted {
			result = "Finalizado"
		}
		fmt.Fprintf(&b, "      Resultado: %s\n\n", result)
	}

	b.WriteString("2.- ¿Qué voy a hacer a partir de este momento?\n\n")
	b.WriteString("    - \n\n")
	b.WriteString("3.- Horas diarias imputadas\n")
	fmt.Fprintf(&b, "    %s\n\n", timeagg.FormatHM(timeagg.DailyTotal(date, day)))
	b.WriteString("Un saludo,\n")
	fmt.Fprintf(&b, "%s.", TitleCase(userName))

	return Email{
		To:      EmailRecipients,
		Subject: fmt.Sprintf("Sdweb - Interno - Parte trabajo - %s - %s", userName, formatted),
		Body:    b.String(),
	}, nil
}
